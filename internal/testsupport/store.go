package testsupport

import (
	"context"
	"testing"

	"rtpkit/internal/config"
	"rtpkit/internal/logging"
	"rtpkit/internal/planstore"
)

// MustOpenStore opens the plan store configured in cfg and closes it when the test ends.
func MustOpenStore(t testing.TB, cfg *config.Config) *planstore.Store {
	t.Helper()

	store, err := planstore.Open(context.Background(), cfg.Store.Path, logging.NewNop())
	if err != nil {
		t.Fatalf("planstore.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
