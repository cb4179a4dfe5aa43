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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenPSG/ieegbids/internal/coords"
)

func newElectrodesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "electrodes <coordinate-file>",
		Short: "Derive electrodes.tsv and coordsystem.json sidecars from an x/y/z coordinate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix, err := coords.LoadFile(args[0])
			if err != nil {
				return err
			}

			outDir, err := ctx.resolveOutputDir()
			if err != nil {
				return err
			}
			converter, err := ctx.converter()
			if err != nil {
				return err
			}

			written, err := converter.ConvertElectrodes(matrix, outDir)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
