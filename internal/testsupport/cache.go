package testsupport

import (
	"context"
	"testing"

	"vangogh/internal/config"
	"vangogh/internal/museum"
)

// MustOpenCache opens the configured object cache for tests and registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) *museum.Cache {
	t.Helper()

	cache, err := museum.OpenCache(context.Background(), cfg.Paths.CachePath)
	if err != nil {
		t.Fatalf("museum.OpenCache: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}
