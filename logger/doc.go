// Package logger provides structured logging for rediskit built on zerolog.
//
// Loggers are cheap to derive: WithComponent and WithFields return copies
// with bound fields, so each package can carry its own tagged logger:
//
//	log := logger.NewDefault("my-service").WithComponent("redis")
//	log.Info("connection established", logger.Fields("addr", addr, "db", db))
package logger
