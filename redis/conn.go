package redis

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/rediskit/errors"
	"github.com/kbukum/rediskit/logger"
	"github.com/kbukum/rediskit/resilience"
)

// ConnOption configures managed-connection establishment.
type ConnOption func(*connOptions)

type connOptions struct {
	pool    PoolConfig
	log     *logger.Logger
	tracing bool
}

// WithPoolConfig overrides the default establishment tuning.
func WithPoolConfig(pool PoolConfig) ConnOption {
	return func(o *connOptions) {
		o.pool = pool
	}
}

// WithLogger sets the logger used by the connection.
func WithLogger(log *logger.Logger) ConnOption {
	return func(o *connOptions) {
		o.log = log
	}
}

// WithTracing enables OpenTelemetry spans and duration metrics for
// every command issued over the connection.
func WithTracing() ConnOption {
	return func(o *connOptions) {
		o.tracing = true
	}
}

// Conn is a managed connection to Redis. It is safe for concurrent use:
// the underlying pooled client reconnects on transient network loss.
// The caller owns the handle and closes it when done.
type Conn struct {
	rdb    goredis.UniversalClient
	log    *logger.Logger
	closed bool
	mu     sync.Mutex
}

// NewConn wraps an already-open driver client in a managed connection.
// Useful for tests and for callers that construct their own client.
func NewConn(client goredis.UniversalClient) *Conn {
	return &Conn{rdb: client, log: logger.WithComponent("redis")}
}

// Connect establishes a managed connection.
//
// Establishment is staged: the URL is built from the configuration, a
// client handle is opened for it, and the handle is verified with a
// ping retried per the pool configuration. Each stage fails with an
// error naming the stage; the overall deadline expiring surfaces as a
// timeout error.
func Connect(ctx context.Context, cfg Config, opts ...ConnOption) (*Conn, error) {
	o := connOptions{pool: DefaultPoolConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.WithComponent("redis")
	}

	url, err := cfg.URL()
	if err != nil {
		return nil, err
	}

	ropts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, errors.PoolCreation("failed to create client", err)
	}
	if o.pool.ConnTimeout > 0 {
		ropts.DialTimeout = o.pool.ConnTimeout
	}
	if o.pool.KeepAlive {
		ropts.MinIdleConns = 1
	}

	client := goredis.NewClient(ropts)
	if o.tracing {
		if err := instrument(client, cfg.Addr()); err != nil {
			_ = client.Close()
			return nil, errors.PoolCreation("failed to create connection manager", err)
		}
	}

	cctx := ctx
	if o.pool.ConnTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, o.pool.ConnTimeout)
		defer cancel()
	}

	retryCfg := resilience.RetryConfig{
		MaxAttempts:    o.pool.MaxRetries,
		InitialBackoff: o.pool.RetryInterval,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			o.log.Warn("redis connect retry", logger.Fields(
				logger.FieldAttempt, attempt,
				logger.FieldAddr, cfg.Addr(),
				logger.FieldError, err.Error(),
			))
		},
	}
	if err := resilience.RetryFunc(cctx, retryCfg, func() error {
		return client.Ping(cctx).Err()
	}); err != nil {
		_ = client.Close()
		if stderrors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, errors.Timeout("connect").WithDetail("addr", cfg.Addr())
		}
		return nil, errors.PoolCreation("failed to create connection manager", err)
	}

	o.log.Info("redis connection established", logger.Fields(
		logger.FieldAddr, cfg.Addr(),
		logger.FieldDB, cfg.DB,
	))
	return &Conn{rdb: client, log: o.log}, nil
}

// Ping verifies the connection is alive.
func (c *Conn) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return errors.ConnectionManager(err)
	}
	return nil
}

// Close closes the connection. Safe to call multiple times.
func (c *Conn) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.log != nil {
		c.log.Debug("closing redis connection")
	}
	return c.rdb.Close()
}

// Unwrap returns the underlying driver client for advanced operations.
func (c *Conn) Unwrap() goredis.UniversalClient {
	return c.rdb
}
