package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kbukum/rediskit/errors"
)

// SetJSON serializes a value to JSON and stores it as a plain string.
// Encoding failures are serialization errors, never driver errors.
func SetJSON[T any](ctx context.Context, c *Conn, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Serialization(err)
	}
	return c.Set(ctx, key, string(data))
}

// SetJSONEx serializes a value to JSON and stores it with an expiry.
func SetJSONEx[T any](ctx context.Context, c *Conn, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Serialization(err)
	}
	return c.SetEx(ctx, key, string(data), ttl)
}

// GetJSON retrieves and deserializes a JSON value.
// A missing key is (nil, nil); a decode failure is a deserialization error.
func GetJSON[T any](ctx context.Context, c *Conn, key string) (*T, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, errors.Deserialization(err)
	}
	return &value, nil
}

// MGetJSON retrieves multiple JSON values in one round trip. The result
// is positional, aligned with the input keys; absent keys yield nil
// entries. One undecodable element fails the whole batch: no partial
// results are returned.
func MGetJSON[T any](ctx context.Context, c *Conn, keys ...string) ([]*T, error) {
	raws, err := c.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	out := make([]*T, len(raws))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		var value T
		if err := json.Unmarshal([]byte(*raw), &value); err != nil {
			return nil, errors.Deserialization(err)
		}
		out[i] = &value
	}
	return out, nil
}
