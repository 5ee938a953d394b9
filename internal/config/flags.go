package config

import (
	"flag"
	"fmt"
)

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-p port to listen on
//	-host interface to bind
//	-metrics-address prometheus listener address host:port
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-body-limit maximum JSON body size in bytes
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "1h", "30m")
//	-password-hash-cost bcrypt cost
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("travel-journal-server", flag.ContinueOnError)

	fs.StringVar(&cfg.Server.Port, "p", "", "Port to listen on")
	fs.StringVar(&cfg.Server.Host, "host", "", "Interface to bind")
	fs.StringVar(&cfg.Server.MetricsAddress, "metrics-address", "", "Prometheus listener address host:port")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Int64Var(&cfg.Server.BodyLimit, "body-limit", 0, "Maximum JSON body size in bytes")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "Bcrypt cost of password hashes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
