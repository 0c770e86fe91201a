package redis

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/rediskit/errors"
	"github.com/kbukum/rediskit/logger"
)

// NewClient opens a lazy client handle from the configuration.
// No connection is established here: the driver dials on first use.
// Failures to build or parse the URL are wrapped as client creation
// errors, except an empty host which is a configuration error.
func NewClient(cfg Config) (*goredis.Client, error) {
	url, err := cfg.URL()
	if err != nil {
		return nil, err
	}

	// The password stays out of the trace.
	logger.Debug("redis url built", logger.Fields(
		logger.FieldAddr, cfg.Addr(),
		logger.FieldDB, cfg.DB,
	))

	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, errors.ClientCreation(err)
	}

	return goredis.NewClient(opts), nil
}
