// Package testutil defines the test-component contract and setup
// helpers shared by rediskit test infrastructure. The concrete
// in-memory Redis component lives in redis/testutil.
package testutil
