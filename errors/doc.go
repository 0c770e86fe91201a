// Package errors provides unified error handling for rediskit.
// It implements structured error types with machine-readable codes
// covering the connection, configuration, and serialization failure
// modes of the Redis convenience layer, plus retryable detection.
package errors
