package testutil

import (
	"context"

	"github.com/kbukum/rediskit/component"
)

// TestComponent extends component.Component with testing-specific
// lifecycle methods for isolation between test cases.
type TestComponent interface {
	component.Component

	// Reset restores the component to its initial state.
	Reset(ctx context.Context) error

	// Snapshot captures the current state of the component.
	// The returned data can be passed to Restore.
	Snapshot(ctx context.Context) (interface{}, error)

	// Restore returns the component to a previously captured state.
	Restore(ctx context.Context, snapshot interface{}) error
}
