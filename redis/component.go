package redis

import (
	"context"
	"fmt"

	"github.com/kbukum/rediskit/component"
	"github.com/kbukum/rediskit/logger"
)

// Component wraps a managed connection and implements
// component.Component for lifecycle management.
type Component struct {
	conn *Conn
	cfg  Config
	opts []ConnOption
	log  *logger.Logger
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a Redis component for use with the component
// registry.
func NewComponent(cfg Config, log *logger.Logger, opts ...ConnOption) *Component {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Component{
		cfg:  cfg,
		opts: opts,
		log:  log.WithComponent("redis"),
	}
}

// Conn returns the managed connection, or nil if not started.
func (c *Component) Conn() *Conn {
	return c.conn
}

// Name returns the component name.
func (c *Component) Name() string { return "redis" }

// Start establishes and verifies the managed connection.
func (c *Component) Start(ctx context.Context) error {
	opts := append([]ConnOption{WithLogger(c.log)}, c.opts...)
	conn, err := Connect(ctx, c.cfg, opts...)
	if err != nil {
		return fmt.Errorf("redis start: %w", err)
	}
	c.conn = conn
	return nil
}

// Stop gracefully closes the connection.
func (c *Component) Stop(_ context.Context) error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Health returns the current health status of the connection.
func (c *Component) Health(ctx context.Context) component.Health {
	if c.conn == nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: "redis not connected",
		}
	}

	if err := c.conn.Ping(ctx); err != nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: fmt.Sprintf("ping failed: %v", err),
		}
	}

	return component.Health{
		Name:   c.Name(),
		Status: component.StatusHealthy,
	}
}

// Describe returns summary info about the configured target.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "Redis",
		Type:    "redis",
		Details: fmt.Sprintf("%s db=%d", c.cfg.Addr(), c.cfg.DB),
	}
}
