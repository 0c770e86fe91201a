package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/rediskit/errors"
)

// Defaulter is implemented by configs that apply their own defaults
// after loading.
type Defaulter interface {
	ApplyDefaults()
}

// Validator is implemented by configs that run their own semantic
// checks after defaults are applied.
type Validator interface {
	Validate() error
}

// Option configures the loader.
type Option func(*options)

type options struct {
	configFile string
	envFile    string
	envPrefix  string
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithEnvPrefix sets the prefix for environment variable overrides,
// e.g. "MYAPP" binds MYAPP_REDIS_HOST to redis.host.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

// Load populates out from the config file and environment.
//
// Order: .env file (if present) is loaded into the process environment,
// the YAML file is read, environment variables override file values,
// the result is unmarshalled into out, then defaults and validation
// hooks run. All failures are configuration errors.
func Load(out any, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return errors.Configuration(fmt.Sprintf("failed to load env file %s", o.envFile)).WithCause(err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if o.envPrefix != "" {
		v.SetEnvPrefix(o.envPrefix)
	}
	v.AutomaticEnv()

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Configuration(fmt.Sprintf("failed to read config file %s", o.configFile)).WithCause(err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return errors.Configuration("failed to unmarshal configuration").WithCause(err)
	}

	if d, ok := out.(Defaulter); ok {
		d.ApplyDefaults()
	}

	if err := validateStruct(out); err != nil {
		return err
	}

	if vl, ok := out.(Validator); ok {
		if err := vl.Validate(); err != nil {
			var e *errors.Error
			if stderrors.As(err, &e) {
				return err
			}
			return errors.Configuration(err.Error())
		}
	}
	return nil
}
