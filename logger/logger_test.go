package logger

import (
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "loud", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "debug", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestDerivedLoggers(t *testing.T) {
	log := NewDefault("test")

	tagged := log.WithComponent("redis")
	if tagged == log {
		t.Error("WithComponent should return a new logger")
	}

	withFields := log.WithFields(map[string]interface{}{"addr": "localhost:6379"})
	if withFields == log {
		t.Error("WithFields should return a new logger")
	}

	// Must not panic.
	tagged.Debug("debug msg")
	tagged.Info("info msg", Fields("key", "k1"))
	tagged.Warn("warn msg")
	tagged.Error("error msg")
}

func TestFieldsHelper(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields: %v", m)
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 field, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("get", 1500*time.Millisecond)
	if m[FieldOperation] != "get" {
		t.Errorf("unexpected operation: %v", m)
	}
	if m[FieldDuration] != int64(1500) {
		t.Errorf("unexpected duration: %v", m)
	}
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("global logger should be lazily created")
	}
	// Package-level helpers must not panic.
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
}
