package testutil

import (
	"context"
	"testing"
)

// CleanupFunc stops a component started by Setup.
type CleanupFunc func() error

// Setup starts a test component and returns a cleanup function.
// The cleanup function should be called (typically with defer) to stop
// the component.
func Setup(c TestComponent) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), c)
}

// SetupWithContext starts a test component with a custom context.
func SetupWithContext(ctx context.Context, c TestComponent) (CleanupFunc, error) {
	if err := c.Start(ctx); err != nil {
		return nil, err
	}
	return func() error {
		return c.Stop(ctx)
	}, nil
}

// Run starts a test component bound to the test lifecycle: the
// component is stopped automatically when the test finishes.
func Run(t *testing.T, c TestComponent) {
	t.Helper()

	cleanup, err := Setup(c)
	if err != nil {
		t.Fatalf("failed to start %s: %v", c.Name(), err)
	}
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("failed to stop %s: %v", c.Name(), err)
		}
	})
}
