package redis

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/kbukum/rediskit/errors"
)

func miniConfig(t *testing.T, mini *miniredis.Miniredis) Config {
	t.Helper()
	host, portStr, err := net.SplitHostPort(mini.Addr())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}
	return Config{Host: host, Port: port}
}

func TestConnect(t *testing.T) {
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	ctx := context.Background()
	conn, err := Connect(ctx, miniConfig(t, mini))
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := conn.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if conn.Unwrap() == nil {
		t.Error("expected driver client from Unwrap")
	}

	if err := conn.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := conn.Get(ctx, "k")
	if err != nil || !ok || val != "v" {
		t.Errorf("Get = (%q, %v, %v)", val, ok, err)
	}
}

func TestConnectEmptyHost(t *testing.T) {
	_, err := Connect(context.Background(), Config{})
	if !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Errorf("expected CONFIGURATION error, got %v", err)
	}
}

func TestConnectRefused(t *testing.T) {
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	cfg := miniConfig(t, mini)
	mini.Close()

	_, err = Connect(context.Background(), cfg, WithPoolConfig(PoolConfig{
		ConnTimeout:   2 * time.Second,
		RetryInterval: time.Millisecond,
		MaxRetries:    2,
	}))
	if err == nil {
		t.Fatal("expected error connecting to closed server")
	}
	if !errors.HasCode(err, errors.ErrCodePoolCreation) {
		t.Errorf("expected POOL_CREATION error, got %v", err)
	}
	if !errors.IsRetryable(err) {
		t.Error("expected connection failure to be retryable")
	}
}

func TestConnectTimeout(t *testing.T) {
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	_, err = Connect(context.Background(), miniConfig(t, mini), WithPoolConfig(PoolConfig{
		ConnTimeout:   time.Nanosecond,
		RetryInterval: time.Millisecond,
		MaxRetries:    2,
	}))
	if !errors.HasCode(err, errors.ErrCodeTimeout) {
		t.Errorf("expected TIMEOUT error, got %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	conn, _ := newTestConn(t)
	if err := conn.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestPingAfterClose(t *testing.T) {
	conn, _ := newTestConn(t)
	if err := conn.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	err := conn.Ping(context.Background())
	if !errors.HasCode(err, errors.ErrCodeConnectionManager) {
		t.Errorf("expected CONNECTION_MANAGER error, got %v", err)
	}
}

func TestConnectWithTracing(t *testing.T) {
	// The global otel providers are no-ops; tracing must not change
	// command semantics.
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	ctx := context.Background()
	conn, err := Connect(ctx, miniConfig(t, mini), WithTracing())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := conn.Set(ctx, "traced", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := conn.Get(ctx, "traced")
	if err != nil || !ok || val != "1" {
		t.Errorf("Get = (%q, %v, %v)", val, ok, err)
	}
}
