// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// ErrInvalidServerConfigs, ErrInvalidStorageConfigs or ErrInvalidAppConfigs.
func (cfg *StructuredConfig) validate() error {
	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("%w: port %q is not a number in 0..65535", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.BodyLimit <= 0 {
		return fmt.Errorf("%w: body limit must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d is out of range %d..%d",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}
