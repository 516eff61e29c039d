// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally seeded from a
// .env file. Defaults are declared as 'default' struct tags on the partial
// configuration structs (core/server, core/logger) and bound into Viper via
// reflection, so every key works with AutomaticEnv out of the box
// (e.g. SERVER_PORT, SERVER_STATIC_ROOT, LOG_LEVEL, LOG_FORMAT).
package config
