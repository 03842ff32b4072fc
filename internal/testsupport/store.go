package testsupport

import (
	"testing"

	"movieshelf/internal/config"
	"movieshelf/internal/logging"
	"movieshelf/internal/movies"
	"movieshelf/internal/seed"
)

// MustNewStore builds a store seeded from cfg.
func MustNewStore(t testing.TB, cfg *config.Config) *movies.Store {
	t.Helper()

	store, err := seed.NewStore(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("seed.NewStore: %v", err)
	}
	return store
}

// MustAppend adds a movie and fails the test on error.
func MustAppend(t testing.TB, store *movies.Store, title string) movies.Movie {
	t.Helper()

	m, err := store.Append(title)
	if err != nil {
		t.Fatalf("Append(%q): %v", title, err)
	}
	return m
}
