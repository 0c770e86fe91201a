// Package testutil provides an in-memory Redis test component backed
// by miniredis, plus helpers for wiring it into connection tests.
package testutil
