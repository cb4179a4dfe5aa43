// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package recording

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write serializes a session header to w in the fixed-width layout read by
// Open. Overlong text fields are truncated to their field width.
func Write(w io.Writer, s Session) error {
	if s.Version == "" {
		s.Version = Version1
	}
	if len(s.Channels) != s.ChannelCount && s.ChannelCount != 0 {
		return fmt.Errorf("expected %d channels, got %d", s.ChannelCount, len(s.Channels))
	}
	s.ChannelCount = len(s.Channels)

	writer := bufio.NewWriter(w)

	writeField(writer, string(s.Version), versionWidth)
	writeField(writer, s.RecordingID, recordingIDWidth)
	writeField(writer, strconv.FormatInt(s.StartTimestamp, 10), timestampWidth)
	writeField(writer, strconv.FormatInt(s.EndTimestamp, 10), timestampWidth)
	writeFloat(writer, s.SamplingFrequency, frequencyWidth)
	writeOptionalFloat(writer, s.HighpassCutoff, cutoffWidth)
	writeOptionalFloat(writer, s.LowpassCutoff, cutoffWidth)
	writeField(writer, strconv.Itoa(s.ChannelCount), countWidth)

	// Write the field-major channel blocks.
	for _, ch := range s.Channels {
		writeField(writer, ch.Label, labelWidth)
	}
	for _, ch := range s.Channels {
		writeField(writer, strconv.Itoa(int(ch.Kind)), kindWidth)
	}
	for _, ch := range s.Channels {
		writeField(writer, ch.Units, unitsWidth)
	}
	for _, ch := range s.Channels {
		writeFloat(writer, ch.SamplingFrequency, frequencyWidth)
	}
	for _, ch := range s.Channels {
		writeOptionalFloat(writer, ch.LowCutoff, cutoffWidth)
	}
	for _, ch := range s.Channels {
		writeOptionalFloat(writer, ch.HighCutoff, cutoffWidth)
	}
	for _, ch := range s.Channels {
		writeOptionalFloat(writer, ch.Notch, cutoffWidth)
	}
	for _, ch := range s.Channels {
		writeField(writer, ch.Reference, referenceWidth)
	}
	for _, ch := range s.Channels {
		writeField(writer, strconv.Itoa(ch.AcquisitionPosition), positionWidth)
	}
	for _, ch := range s.Channels {
		writeField(writer, ch.Description, descriptionWidth)
	}

	// Ensure all data is flushed to the underlying writer
	return writer.Flush()
}

func writeField(w *bufio.Writer, s string, width int) {
	if len(s) > width {
		s = s[:width]
	}
	fmt.Fprintf(w, "%-*s", width, s)
}

// writeFloat writes a numeric field in the shortest form that fits,
// dropping decimals if the compact form overflows the field.
func writeFloat(w *bufio.Writer, v float64, width int) {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if len(s) > width {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	}
	writeField(w, s, width)
}

// writeOptionalFloat writes a blank field for unconfigured (zero) values.
func writeOptionalFloat(w *bufio.Writer, v float64, width int) {
	if v == 0 {
		writeField(w, "", width)
		return
	}
	writeFloat(w, v, width)
}
