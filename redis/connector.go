package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// Connector is the entry point for producing clients and managed
// connections. It is an immutable value: each With* setter returns an
// updated copy, so a Connector can be shared and forked freely.
type Connector struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewConnector returns a Connector with default settings
// (localhost:6379, no password, db 0).
func NewConnector() Connector {
	return Connector{
		Host: "localhost",
		Port: 6379,
	}
}

// WithHost returns a copy with the host set.
func (c Connector) WithHost(host string) Connector {
	c.Host = host
	return c
}

// WithPort returns a copy with the port set.
func (c Connector) WithPort(port int) Connector {
	c.Port = port
	return c
}

// WithPassword returns a copy with the password set.
func (c Connector) WithPassword(password string) Connector {
	c.Password = password
	return c
}

// WithDB returns a copy with the database number set.
func (c Connector) WithDB(db int) Connector {
	c.DB = db
	return c
}

// Client opens a one-shot lazy client handle for the configured target.
func (c Connector) Client() (*goredis.Client, error) {
	return NewClient(c.config())
}

// Connect establishes a managed connection for the configured target.
func (c Connector) Connect(ctx context.Context, opts ...ConnOption) (*Conn, error) {
	return Connect(ctx, c.config(), opts...)
}

func (c Connector) config() Config {
	return Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
	}
}
