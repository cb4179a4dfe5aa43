// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/OpenPSG/ieegbids/internal/bids"
	"github.com/OpenPSG/ieegbids/internal/config"
	"github.com/OpenPSG/ieegbids/internal/logging"
)

// commandContext lazily loads configuration and builds the shared logger so
// subcommands don't repeat the wiring.
type commandContext struct {
	configPath *string
	outputDir  *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configPath, outputDir *string) *commandContext {
	return &commandContext{configPath: configPath, outputDir: outputDir}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// converter assembles a Converter for one run, tagged with a fresh run ID.
func (c *commandContext) converter() (*bids.Converter, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	return &bids.Converter{
		Logger: logger.With("run_id", uuid.NewString()),
		Defaults: bids.Defaults{
			TaskName:           cfg.Session.TaskName,
			Manufacturer:       cfg.Session.Manufacturer,
			InstitutionName:    cfg.Session.InstitutionName,
			PowerLineFrequency: cfg.Session.PowerLineFrequency,
		},
	}, nil
}

// resolveOutputDir prefers the --output flag over the configured directory.
func (c *commandContext) resolveOutputDir() (string, error) {
	if *c.outputDir != "" {
		return *c.outputDir, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.OutputDir, nil
}
