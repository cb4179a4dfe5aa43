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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OpenPSG/ieegbids/internal/bids"
	"github.com/OpenPSG/ieegbids/internal/recording"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-file>",
		Short: "Summarize a recording session without converting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := recording.OpenFile(args[0])
			if err != nil {
				return err
			}

			bids.SortByAcquisitionPosition(session.Channels)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recording: %s\n", session.RecordingID)
			fmt.Fprintf(out, "Sampling frequency: %g Hz, %d channels\n", session.SamplingFrequency, len(session.Channels))
			for _, anomaly := range bids.PositionAnomalies(session.Channels) {
				fmt.Fprintf(out, "Warning: %s\n", anomaly)
			}

			rows := make([][]string, 0, len(session.Channels))
			for _, ch := range session.Channels {
				rows = append(rows, []string{
					strconv.Itoa(ch.AcquisitionPosition),
					ch.Label,
					ch.Kind.String(),
					ch.Units,
					strconv.FormatFloat(ch.SamplingFrequency, 'g', -1, 64),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"pos", "label", "kind", "units", "rate"}, rows))
			return nil
		},
	}
}
