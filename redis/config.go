package redis

import (
	"fmt"
	"time"

	"github.com/kbukum/rediskit/errors"
)

// Config holds Redis connection configuration.
type Config struct {
	// Host is the Redis server host.
	Host string `yaml:"host" mapstructure:"host" validate:"required"`

	// Port is the Redis server port.
	Port int `yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`

	// Password is the Redis server password. Empty means no auth.
	Password string `yaml:"password" mapstructure:"password"`

	// DB is the Redis database number.
	DB int `yaml:"db" mapstructure:"db" validate:"gte=0,lte=255"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 6379
	}
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.Configuration("redis host cannot be empty")
	}
	return nil
}

// Addr returns the host:port address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL builds the connection URL of the form redis://[:password@]host:port/db.
// The credential segment is omitted entirely when Password is empty.
func (c Config) URL() (string, error) {
	if c.Host == "" {
		return "", errors.Configuration("redis host cannot be empty")
	}
	if c.Password == "" {
		return fmt.Sprintf("redis://%s:%d/%d", c.Host, c.Port, c.DB), nil
	}
	return fmt.Sprintf("redis://:%s@%s:%d/%d", c.Password, c.Host, c.Port, c.DB), nil
}

// PoolConfig tunes connection establishment for a managed connection.
type PoolConfig struct {
	// ConnTimeout bounds the whole establishment, dialing included.
	ConnTimeout time.Duration `yaml:"conn_timeout" mapstructure:"conn_timeout"`

	// RetryInterval is the initial backoff between verification retries.
	RetryInterval time.Duration `yaml:"retry_interval" mapstructure:"retry_interval"`

	// MaxRetries is the maximum number of verification attempts.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`

	// KeepAlive keeps a minimum idle connection open in the pool.
	KeepAlive bool `yaml:"keep_alive" mapstructure:"keep_alive"`
}

// DefaultPoolConfig returns the default establishment tuning.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		ConnTimeout:   30 * time.Second,
		RetryInterval: 100 * time.Millisecond,
		MaxRetries:    3,
		KeepAlive:     true,
	}
}
