package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds token-validation settings. The identity provider itself is
// external; this service only validates the bearer tokens it issues.
type AuthConfig struct {
	Issuer        string        `yaml:"issuer"`
	Audience      string        `yaml:"audience"`
	Secret        string        `yaml:"secret"`
	TokenLifetime time.Duration `yaml:"token_lifetime"`
}

// LoadAuthConfig reads auth configuration from a YAML file. Environment
// variables override file values for secrets.
func LoadAuthConfig(path string) (*AuthConfig, error) {
	config := &AuthConfig{
		Issuer:        "student-hub",
		Audience:      "student-hub-frontend",
		TokenLifetime: 24 * time.Hour,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read auth config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse auth config: %w", err)
		}
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Secret = secret
	}
	if config.Secret == "" {
		return nil, fmt.Errorf("auth secret is required (set JWT_SECRET or secret in %s)", path)
	}
	if config.TokenLifetime <= 0 {
		config.TokenLifetime = 24 * time.Hour
	}

	return config, nil
}
