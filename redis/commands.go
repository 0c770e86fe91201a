package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/rediskit/errors"
)

// Each operation below issues exactly one command and converts the
// reply. There is no client-side batching, transaction wrapping, or
// retry; driver failures surface through the blanket conversion in the
// errors package. Missing keys are reported with an ok=false result,
// never as an error.

// --- String operations ---

// Set stores a value under a key, overwriting unconditionally.
func (c *Conn) Set(ctx context.Context, key string, value any) error {
	if err := c.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.FromDriver(err)
	}
	return nil
}

// SetEx stores a value with an expiry in one round trip.
func (c *Conn) SetEx(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := c.rdb.SetEx(ctx, key, value, ttl).Err(); err != nil {
		return errors.FromDriver(err)
	}
	return nil
}

// Get retrieves a value by key.
func (c *Conn) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.FromDriver(err)
	}
	return val, true, nil
}

// Del deletes one or more keys and returns the number removed.
func (c *Conn) Del(ctx context.Context, keys ...string) (int64, error) {
	n, err := c.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// Exists reports whether the key exists.
func (c *Conn) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.FromDriver(err)
	}
	return n == 1, nil
}

// Expire sets a key's time to live. Returns false if the key is absent.
func (c *Conn) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.rdb.Expire(ctx, key, ttl).Result()
	if err != nil {
		return false, errors.FromDriver(err)
	}
	return ok, nil
}

// TTL returns the remaining time to live of a key in seconds,
// passing through the command's -1 (no expiry) and -2 (missing key).
func (c *Conn) TTL(ctx context.Context, key string) (int64, error) {
	d, err := c.rdb.TTL(ctx, key).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	// The driver preserves -1/-2 as raw durations.
	if d < 0 {
		return int64(d), nil
	}
	return int64(d / time.Second), nil
}

// MGet retrieves multiple keys in one round trip. The result is
// positional: absent keys yield nil entries aligned with the input.
func (c *Conn) MGet(ctx context.Context, keys ...string) ([]*string, error) {
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.FromDriver(err)
	}
	out := make([]*string, len(vals))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[i] = &s
		}
	}
	return out, nil
}

// --- Hash operations ---

// HSet sets a hash field. Returns true if the field was newly created.
func (c *Conn) HSet(ctx context.Context, key, field string, value any) (bool, error) {
	n, err := c.rdb.HSet(ctx, key, field, value).Result()
	if err != nil {
		return false, errors.FromDriver(err)
	}
	return n == 1, nil
}

// HGet retrieves a hash field.
func (c *Conn) HGet(ctx context.Context, key, field string) (string, bool, error) {
	val, err := c.rdb.HGet(ctx, key, field).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.FromDriver(err)
	}
	return val, true, nil
}

// HGetAll retrieves all fields and values of a hash.
func (c *Conn) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	m, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.FromDriver(err)
	}
	return m, nil
}

// HDel deletes hash fields and returns the number removed.
func (c *Conn) HDel(ctx context.Context, key string, fields ...string) (int64, error) {
	n, err := c.rdb.HDel(ctx, key, fields...).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// HExists reports whether the hash field exists.
func (c *Conn) HExists(ctx context.Context, key, field string) (bool, error) {
	ok, err := c.rdb.HExists(ctx, key, field).Result()
	if err != nil {
		return false, errors.FromDriver(err)
	}
	return ok, nil
}

// --- List operations ---

// LPush prepends values to a list and returns the new length.
func (c *Conn) LPush(ctx context.Context, key string, values ...any) (int64, error) {
	n, err := c.rdb.LPush(ctx, key, values...).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// RPush appends values to a list and returns the new length.
func (c *Conn) RPush(ctx context.Context, key string, values ...any) (int64, error) {
	n, err := c.rdb.RPush(ctx, key, values...).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// LPop pops a single element from the head of a list.
func (c *Conn) LPop(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.LPop(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.FromDriver(err)
	}
	return val, true, nil
}

// RPop pops a single element from the tail of a list.
func (c *Conn) RPop(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.RPop(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.FromDriver(err)
	}
	return val, true, nil
}

// LLen returns the length of a list.
func (c *Conn) LLen(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.LLen(ctx, key).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// LRange returns list elements between start and stop, bounds inclusive.
// Negative indices address from the tail, per the command semantics.
func (c *Conn) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := c.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, errors.FromDriver(err)
	}
	return vals, nil
}

// --- Set operations ---

// SAdd adds members to a set and returns the number added.
func (c *Conn) SAdd(ctx context.Context, key string, members ...any) (int64, error) {
	n, err := c.rdb.SAdd(ctx, key, members...).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// SRem removes members from a set and returns the number removed.
func (c *Conn) SRem(ctx context.Context, key string, members ...any) (int64, error) {
	n, err := c.rdb.SRem(ctx, key, members...).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// SIsMember reports whether the member belongs to the set.
func (c *Conn) SIsMember(ctx context.Context, key string, member any) (bool, error) {
	ok, err := c.rdb.SIsMember(ctx, key, member).Result()
	if err != nil {
		return false, errors.FromDriver(err)
	}
	return ok, nil
}

// SMembers returns all members of a set, unordered.
func (c *Conn) SMembers(ctx context.Context, key string) ([]string, error) {
	vals, err := c.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.FromDriver(err)
	}
	return vals, nil
}

// SCard returns the number of members in a set.
func (c *Conn) SCard(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.SCard(ctx, key).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// --- Sorted-set operations ---

// ZAdd adds a member with a score and returns the number added.
func (c *Conn) ZAdd(ctx context.Context, key string, score float64, member string) (int64, error) {
	n, err := c.rdb.ZAdd(ctx, key, goredis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// ZRem removes members and returns the number removed.
func (c *Conn) ZRem(ctx context.Context, key string, members ...any) (int64, error) {
	n, err := c.rdb.ZRem(ctx, key, members...).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}

// ZRange returns members between start and stop, ordered by score
// ascending, bounds inclusive.
func (c *Conn) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := c.rdb.ZRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, errors.FromDriver(err)
	}
	return vals, nil
}

// ZScore returns the score of a member.
func (c *Conn) ZScore(ctx context.Context, key, member string) (float64, bool, error) {
	score, err := c.rdb.ZScore(ctx, key, member).Result()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.FromDriver(err)
	}
	return score, true, nil
}

// ZCard returns the number of members in a sorted set.
func (c *Conn) ZCard(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.ZCard(ctx, key).Result()
	if err != nil {
		return 0, errors.FromDriver(err)
	}
	return n, nil
}
