package impl

import (
	"io"
	"log/slog"
	"testing"

	"boothly/internal/infra/seed"
	"boothly/internal/infra/state"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestProvider returns a provider mounted on the sample dataset,
// unmounted again when the test ends.
func createTestProvider(t *testing.T) *state.Provider {
	t.Helper()

	provider := state.NewProvider(seed.Sample(), discardLogger())
	provider.Mount()
	t.Cleanup(provider.Unmount)

	return provider
}

// createUnmountedProvider returns a provider that was never mounted.
func createUnmountedProvider() *state.Provider {
	return state.NewProvider(seed.Sample(), discardLogger())
}

func strPtr(s string) *string { return &s }
