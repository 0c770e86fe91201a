package component

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/rediskit/logger"
)

// Registry manages component lifecycle with deterministic ordering.
// Components are started in registration order and stopped in reverse.
type Registry struct {
	components []Component
	started    map[string]bool
	log        *logger.Logger
	mu         sync.Mutex
}

// NewRegistry creates a new component registry.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Registry{
		started: make(map[string]bool),
		log:     log.WithComponent("registry"),
	}
}

// Register adds a component. Register dependencies first: components are
// started in registration order.
func (r *Registry) Register(c Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.components {
		if existing.Name() == c.Name() {
			return fmt.Errorf("component %s already registered", c.Name())
		}
	}
	r.components = append(r.components, c)
	return nil
}

// StartAll starts all components in registration order. On the first
// failure it stops the components already started and returns the error.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.components {
		if err := c.Start(ctx); err != nil {
			r.log.Error("component start failed", logger.ErrorFields(c.Name(), err))
			r.stopStarted(ctx)
			return fmt.Errorf("failed to start %s: %w", c.Name(), err)
		}
		r.started[c.Name()] = true
		r.log.Debug("component started", logger.Fields(logger.FieldComponent, c.Name()))
	}
	return nil
}

// StopAll stops all started components in reverse registration order.
// All components are attempted; the first error is returned.
func (r *Registry) StopAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopStarted(ctx)
}

func (r *Registry) stopStarted(ctx context.Context) error {
	var firstErr error
	for i := len(r.components) - 1; i >= 0; i-- {
		c := r.components[i]
		if !r.started[c.Name()] {
			continue
		}
		if err := c.Stop(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to stop %s: %w", c.Name(), err)
		}
		r.started[c.Name()] = false
	}
	return firstErr
}

// HealthAll reports the health of every registered component.
func (r *Registry) HealthAll(ctx context.Context) []Health {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]Health, 0, len(r.components))
	for _, c := range r.components {
		results = append(results, c.Health(ctx))
	}
	return results
}
