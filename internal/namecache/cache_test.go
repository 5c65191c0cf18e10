package namecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLookup struct {
	names map[string]string
	err   error
	calls int
	asked [][]string
}

func (f *fakeLookup) GetDisplayNames(_ context.Context, ids []string) (map[string]string, error) {
	f.calls++
	f.asked = append(f.asked, ids)
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[string]string)
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			result[id] = name
		}
	}
	return result, nil
}

func TestResolveOneCachesWithinTTL(t *testing.T) {
	lookup := &fakeLookup{names: map[string]string{"u1": "Alice"}}
	cache := New(lookup)

	assert.Equal(t, "Alice", cache.ResolveOne(context.Background(), "u1"))
	assert.Equal(t, "Alice", cache.ResolveOne(context.Background(), "u1"))
	assert.Equal(t, 1, lookup.calls)
}

func TestResolveOneFallbackOnLookupError(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("db down")}
	cache := New(lookup)

	name := cache.ResolveOne(context.Background(), "auth0|abcd1234")
	assert.Equal(t, "User 1234", name)
}

func TestResolveOneFallbackForMissingProfile(t *testing.T) {
	lookup := &fakeLookup{names: map[string]string{}}
	cache := New(lookup)

	name := cache.ResolveOne(context.Background(), "u1")
	assert.Equal(t, FallbackName("u1"), name)

	// Fallbacks are not cached; a later successful lookup wins.
	lookup.names["u1"] = "Alice"
	assert.Equal(t, "Alice", cache.ResolveOne(context.Background(), "u1"))
}

func TestResolveManyFetchesOnlyUncached(t *testing.T) {
	lookup := &fakeLookup{names: map[string]string{"a": "Alice", "b": "Bob", "c": "Carol"}}
	cache := New(lookup)

	cache.ResolveOne(context.Background(), "a")
	assert.Equal(t, 1, lookup.calls)

	resolved := cache.ResolveMany(context.Background(), []string{"a", "b", "c", "b"})
	assert.Equal(t, 2, lookup.calls)
	assert.Equal(t, map[string]string{"a": "Alice", "b": "Bob", "c": "Carol"}, resolved)
	assert.ElementsMatch(t, []string{"b", "c"}, lookup.asked[1])
}

func TestResolveManyMixedResults(t *testing.T) {
	lookup := &fakeLookup{names: map[string]string{"a": "Alice"}}
	cache := New(lookup)

	resolved := cache.ResolveMany(context.Background(), []string{"a", "ghost-9876"})
	assert.Equal(t, "Alice", resolved["a"])
	assert.Equal(t, "User 9876", resolved["ghost-9876"])
}

func TestResolveManyLookupErrorFallsBackForAll(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("db down")}
	cache := New(lookup)

	resolved := cache.ResolveMany(context.Background(), []string{"x1", "y2"})
	assert.Equal(t, FallbackName("x1"), resolved["x1"])
	assert.Equal(t, FallbackName("y2"), resolved["y2"])
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	current := time.Now()
	lookup := &fakeLookup{names: map[string]string{"u1": "Alice"}}
	cache := New(lookup, WithTTL(time.Minute), WithClock(func() time.Time { return current }))

	cache.ResolveOne(context.Background(), "u1")
	assert.Equal(t, 1, lookup.calls)

	current = current.Add(30 * time.Second)
	cache.ResolveOne(context.Background(), "u1")
	assert.Equal(t, 1, lookup.calls)

	current = current.Add(31 * time.Second)
	cache.ResolveOne(context.Background(), "u1")
	assert.Equal(t, 2, lookup.calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	lookup := &fakeLookup{names: map[string]string{"u1": "Alice"}}
	cache := New(lookup)

	cache.ResolveOne(context.Background(), "u1")
	lookup.names["u1"] = "Alicia"
	cache.Invalidate("u1")

	assert.Equal(t, "Alicia", cache.ResolveOne(context.Background(), "u1"))
	assert.Equal(t, 2, lookup.calls)
}

func TestClearDropsAllEntries(t *testing.T) {
	lookup := &fakeLookup{names: map[string]string{"a": "Alice", "b": "Bob"}}
	cache := New(lookup)

	cache.ResolveMany(context.Background(), []string{"a", "b"})
	cache.Clear()
	cache.ResolveMany(context.Background(), []string{"a", "b"})
	assert.Equal(t, 2, lookup.calls)
}

func TestFallbackNameShortID(t *testing.T) {
	assert.Equal(t, "User ab", FallbackName("ab"))
	assert.Equal(t, "User 1234", FallbackName("xyz1234"))
}
