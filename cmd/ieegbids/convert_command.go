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

	"github.com/OpenPSG/ieegbids/internal/recording"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <session-file>",
		Short: "Derive channels.tsv and ieeg.json sidecars from a recording session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := recording.OpenFile(args[0])
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

			written, err := converter.ConvertSession(session, outDir)
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
