// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config

import (
	"errors"
	"fmt"

	"github.com/OpenPSG/ieegbids/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must be set")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	switch c.Session.PowerLineFrequency {
	case 0, 50, 60:
	default:
		return errors.New("session.power_line_frequency must be 0, 50 or 60")
	}
	return nil
}
