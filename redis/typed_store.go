package redis

import (
	"context"
	"time"
)

// TypedStore provides typed JSON-serialized get/set operations scoped
// under a key prefix.
type TypedStore[T any] struct {
	conn      *Conn
	keyPrefix string
}

// NewTypedStore creates a TypedStore backed by the given connection.
// All keys are prefixed with keyPrefix followed by a colon separator.
func NewTypedStore[T any](conn *Conn, keyPrefix string) *TypedStore[T] {
	return &TypedStore[T]{
		conn:      conn,
		keyPrefix: keyPrefix,
	}
}

func (s *TypedStore[T]) fullKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + ":" + key
}

// Load deserializes the stored JSON value. Returns (nil, nil) if the
// key doesn't exist.
func (s *TypedStore[T]) Load(ctx context.Context, key string) (*T, error) {
	return GetJSON[T](ctx, s.conn, s.fullKey(key))
}

// Save serializes to JSON and stores with a TTL. A TTL of 0 means no
// expiration.
func (s *TypedStore[T]) Save(ctx context.Context, key string, value *T, ttl time.Duration) error {
	if ttl > 0 {
		return SetJSONEx(ctx, s.conn, s.fullKey(key), value, ttl)
	}
	return SetJSON(ctx, s.conn, s.fullKey(key), value)
}

// Delete removes the key.
func (s *TypedStore[T]) Delete(ctx context.Context, key string) error {
	_, err := s.conn.Del(ctx, s.fullKey(key))
	return err
}
