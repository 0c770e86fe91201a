// Package config loads rediskit configuration from a YAML file and the
// environment. Files are read with viper, .env files with godotenv, and
// loaded structs are checked with struct-tag validation plus their own
// ApplyDefaults/Validate hooks.
//
//	var cfg config.AppConfig
//	err := config.Load(&cfg, config.WithConfigFile("config.yml"))
//
// In-process construction of redis.Config remains the primary path;
// this package is the file/env convenience on top of it.
package config
