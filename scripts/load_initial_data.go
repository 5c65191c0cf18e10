package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"student-hub-backend/internal/config"
	"student-hub-backend/internal/database"
	"student-hub-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	ID          string   `yaml:"id"`
	DisplayName string   `yaml:"display_name"`
	AvatarURL   string   `yaml:"avatar_url,omitempty"`
	Contacts    []string `yaml:"contacts,omitempty"`
	Interests   []string `yaml:"interests,omitempty"`
	Skills      []string `yaml:"skills,omitempty"`
	Experience  string   `yaml:"experience,omitempty"`
	Involved    []string `yaml:"involved,omitempty"`
	Role        string   `yaml:"role"`
	Seniority   string   `yaml:"seniority,omitempty"`
}

type ActivityData struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description,omitempty"`
	Links         []string `yaml:"links,omitempty"`
	OpenPositions int      `yaml:"open_positions"`
	Tags          []string `yaml:"tags,omitempty"`
	OwnerID       string   `yaml:"owner_id"`
	MemberIDs     []string `yaml:"member_ids,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ActivitiesFile struct {
	Activities []ActivityData `yaml:"activities"`
}

func main() {
	dataDir := "seed_data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: logger.Warn,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := loadUsers(db, filepath.Join(dataDir, "users.yaml")); err != nil {
		log.Fatalf("Failed to load users: %v", err)
	}
	if err := loadActivities(db, filepath.Join(dataDir, "activities.yaml")); err != nil {
		log.Fatalf("Failed to load activities: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func loadUsers(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var file UsersFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, u := range file.Users {
		user := models.User{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
			Contacts:    u.Contacts,
			Interests:   u.Interests,
			Skills:      u.Skills,
			Experience:  u.Experience,
			Involved:    u.Involved,
			Role:        models.UserRole(u.Role),
			Seniority:   models.Seniority(u.Seniority),
		}
		if user.Role == "" {
			user.Role = models.UserRoleStudent
		}

		var existing models.User
		err := db.Where("id = ?", user.ID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&user).Error; err != nil {
				return fmt.Errorf("creating user %s: %w", user.ID, err)
			}
			log.Printf("Created user: %s (%s)", user.DisplayName, user.ID)
		case err != nil:
			return err
		default:
			log.Printf("User already exists, skipping: %s", user.ID)
		}
	}

	return nil
}

func loadActivities(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var file ActivitiesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, a := range file.Activities {
		var owner models.User
		if err := db.Where("id = ?", a.OwnerID).First(&owner).Error; err != nil {
			return fmt.Errorf("activity %q: owner %s not found: %w", a.Title, a.OwnerID, err)
		}

		roster := models.Roster{{UserID: a.OwnerID, Role: models.RoleOwner}}
		for _, id := range a.MemberIDs {
			if id == a.OwnerID {
				continue
			}
			roster = append(roster, models.RosterEntry{UserID: id, Role: models.RoleMember})
		}

		activity := models.Activity{
			Title:            a.Title,
			Description:      a.Description,
			Links:            a.Links,
			OpenPositions:    a.OpenPositions,
			Tags:             a.Tags,
			OwnerID:          a.OwnerID,
			OwnerDisplayName: owner.DisplayName,
			Roster:           roster,
		}

		var count int64
		db.Model(&models.Activity{}).
			Where("title = ? AND owner_id = ?", activity.Title, activity.OwnerID).
			Count(&count)
		if count > 0 {
			log.Printf("Activity already exists, skipping: %s", activity.Title)
			continue
		}

		if err := db.Create(&activity).Error; err != nil {
			return fmt.Errorf("creating activity %q: %w", activity.Title, err)
		}
		log.Printf("Created activity: %s (owner %s)", activity.Title, activity.OwnerID)
	}

	return nil
}
