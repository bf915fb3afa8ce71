package testsupport

import (
	"testing"

	"textlab/internal/config"
	"textlab/internal/history"
)

// MustOpenStore opens a history store for the test config and closes it on
// cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open history store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close history store: %v", err)
		}
	})
	return store
}
