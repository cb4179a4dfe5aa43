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
	"fmt"
	"sort"

	"github.com/OpenPSG/ieegbids/internal/recording"
)

// SortByAcquisitionPosition reorders channels in place by their declared
// acquisition position, ascending. The sort is stable so ties keep their
// original order.
func SortByAcquisitionPosition(channels []recording.Channel) {
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].AcquisitionPosition < channels[j].AcquisitionPosition
	})
}

// PositionAnomalies inspects the acquisition positions of the channel list
// and reports advisory findings: positions not starting at 1, and gaps in
// the position range. Findings never abort a conversion; acquisition
// metadata in the wild is routinely incomplete.
func PositionAnomalies(channels []recording.Channel) []string {
	if len(channels) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(channels))
	min, max := channels[0].AcquisitionPosition, channels[0].AcquisitionPosition
	for _, ch := range channels {
		p := ch.AcquisitionPosition
		seen[p] = true
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	var anomalies []string
	if min != 1 {
		anomalies = append(anomalies, fmt.Sprintf("acquisition positions start at %d, not 1", min))
	}
	for p := min; p <= max; p++ {
		if !seen[p] {
			anomalies = append(anomalies, fmt.Sprintf("acquisition positions are not consecutive: %d is missing", p))
			break
		}
	}
	return anomalies
}
