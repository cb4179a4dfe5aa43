// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package bids

import (
	"strings"

	"github.com/OpenPSG/ieegbids/internal/recording"
	"github.com/OpenPSG/ieegbids/internal/sidecar"
)

// Column order of the channels sidecar, matching the BIDS iEEG channels.tsv
// schema.
var channelColumns = []string{
	"name",
	"type",
	"units",
	"low_cutoff",
	"high_cutoff",
	"notch",
	"reference",
	"group",
	"sampling_frequency",
	"status",
	"status_description",
	"description",
}

const (
	channelType      = "ieeg"
	defaultReference = "intracranial"
	defaultStatus    = "good"

	// Amplifier software leaves this literal in description fields the
	// operator never touched.
	descriptionNotEntered = "not entered"
)

// DeriveChannels builds the channels sidecar table: one row per time-series
// channel, in the order the channels are given. Non-waveform channels
// (events, annotations) are skipped. Every column resolves to either a real
// value or the n/a sentinel, never an empty cell.
func DeriveChannels(channels []recording.Channel) *sidecar.Table {
	tbl := sidecar.NewTable(channelColumns...)
	for _, ch := range channels {
		if ch.Kind != recording.KindTimeSeries {
			continue
		}
		// The column count is fixed, so AppendRow cannot fail here.
		_ = tbl.AppendRow(
			sidecar.String(ch.Label),
			sidecar.String(channelType),
			sidecar.String(normalizeUnits(ch.Units)),
			cutoffCell(ch.LowCutoff),
			cutoffCell(ch.HighCutoff),
			cutoffCell(ch.Notch),
			referenceCell(ch.Reference),
			sidecar.String(sidecar.NotApplicable),
			sidecar.Number(ch.SamplingFrequency),
			sidecar.String(defaultStatus),
			sidecar.String(sidecar.NotApplicable),
			descriptionCell(ch.Description),
		)
	}
	return tbl
}

// normalizeUnits maps the amplifier's spelled-out microvolt description to
// the SI symbol; anything else passes through untouched.
func normalizeUnits(units string) string {
	if strings.EqualFold(units, "microvolts") {
		return "µV"
	}
	return units
}

// cutoffCell applies the filter-setting rule: a cutoff is reported only
// when it is strictly positive. Zero means the filter was never configured,
// so zero and absent both collapse to n/a.
func cutoffCell(v float64) sidecar.Cell {
	if v > 0 {
		return sidecar.Number(v)
	}
	return sidecar.NA()
}

func referenceCell(reference string) sidecar.Cell {
	if reference != "" {
		return sidecar.String(reference)
	}
	return sidecar.String(defaultReference)
}

// descriptionCell passes the operator's free text through, collapsing both
// an empty field and the amplifier's "not entered" placeholder to n/a.
func descriptionCell(description string) sidecar.Cell {
	if description == "" || strings.EqualFold(description, descriptionNotEntered) {
		return sidecar.NA()
	}
	return sidecar.String(description)
}
