// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied to every field left empty by env, flags and the
// JSON file.
const (
	DefaultPort             = "8000"
	DefaultTokenIssuer      = "travel-journal-api"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultBodyLimit        = 100 << 10
	DefaultPasswordHashCost = bcrypt.DefaultCost
)

// StructuredConfig is the top-level configuration container for the
// travel-journal-api server. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener and request-handling settings. Its variables
	// carry no common prefix so that the port is read from plain PORT.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values that control authentication.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every
	// token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN selects both the driver and the database:
	//   - postgres://… or postgresql://… opens PostgreSQL through pgx;
	//   - sqlite:<path> opens an SQLite file (sqlite::memory: for RAM).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings for the inbound HTTP listener.
type Server struct {
	// Host is the interface to bind; empty means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"SERVER_HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port string `env:"PORT"`

	// MetricsAddress is the host:port of the separate Prometheus listener.
	// Metrics are not served when empty.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"SERVER_METRICS_ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of the listeners.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// BodyLimit is the maximum accepted size of a JSON request body in bytes.
	// Env: SERVER_BODY_LIMIT
	BodyLimit int64 `env:"SERVER_BODY_LIMIT"`
}

// Address returns the host:port the HTTP listener binds to.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// defaults returns the configuration used for every field no other source
// has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
		},
		Server: Server{
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
			BodyLimit:       DefaultBodyLimit,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. Earlier sources take precedence for every
// non-zero field:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
