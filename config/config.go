package config

import (
	"github.com/kbukum/rediskit/logger"
	"github.com/kbukum/rediskit/redis"
)

// AppConfig bundles the configuration sections a rediskit consumer
// typically loads from one file.
type AppConfig struct {
	Logging logger.Config    `yaml:"logging" mapstructure:"logging"`
	Redis   redis.Config     `yaml:"redis" mapstructure:"redis"`
	Pool    redis.PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// ApplyDefaults applies defaults to every section.
func (c *AppConfig) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Redis.ApplyDefaults()
	if c.Pool == (redis.PoolConfig{}) {
		c.Pool = redis.DefaultPoolConfig()
	}
}

// Validate validates every section.
func (c *AppConfig) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Redis.Validate()
}
