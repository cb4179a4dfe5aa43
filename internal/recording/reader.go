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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed reports a session header that does not match the declared
// schema. All structural parse failures wrap this error so callers can
// distinguish malformed input from I/O failures with errors.Is.
var ErrMalformed = errors.New("malformed session header")

// Fixed-width layout of the session header. The leading block is followed
// by one field-major block per channel attribute.
const (
	versionWidth     = 8
	recordingIDWidth = 80
	timestampWidth   = 20
	frequencyWidth   = 8
	countWidth       = 4

	labelWidth       = 16
	kindWidth        = 4
	unitsWidth       = 16
	cutoffWidth      = 8
	referenceWidth   = 16
	positionWidth    = 8
	descriptionWidth = 32
)

// OpenFile reads the session header stored at path.
func OpenFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening session: %w", err)
	}
	defer f.Close()

	return Open(f)
}

// Open reads a session header from r, validating the full channel schema
// up front.
func Open(r io.Reader) (*Session, error) {
	reader := bufio.NewReader(r)

	s := &Session{}

	version, err := readField(reader, versionWidth)
	if err != nil {
		return nil, err
	}
	if version != string(Version1) {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformed, version)
	}
	s.Version = Version(version)

	if s.RecordingID, err = readField(reader, recordingIDWidth); err != nil {
		return nil, err
	}
	if s.StartTimestamp, err = readInt64(reader, timestampWidth, "start timestamp"); err != nil {
		return nil, err
	}
	if s.EndTimestamp, err = readInt64(reader, timestampWidth, "end timestamp"); err != nil {
		return nil, err
	}
	if s.SamplingFrequency, err = readFloat(reader, frequencyWidth, "sampling frequency"); err != nil {
		return nil, err
	}

	// Hardware cutoffs are optional. A blank or unparseable field reads as
	// zero, which downstream treats as "not configured".
	if s.HighpassCutoff, err = readOptionalFloat(reader, cutoffWidth); err != nil {
		return nil, err
	}
	if s.LowpassCutoff, err = readOptionalFloat(reader, cutoffWidth); err != nil {
		return nil, err
	}

	count, err := readInt64(reader, countWidth, "channel count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative channel count %d", ErrMalformed, count)
	}
	s.ChannelCount = int(count)

	// Read the field-major channel blocks.
	s.Channels = make([]Channel, s.ChannelCount)

	for i := range s.Channels {
		if s.Channels[i].Label, err = readField(reader, labelWidth); err != nil {
			return nil, err
		}
	}

	for i := range s.Channels {
		kind, err := readInt64(reader, kindWidth, "channel kind")
		if err != nil {
			return nil, err
		}
		s.Channels[i].Kind = ChannelKind(kind)
	}

	for i := range s.Channels {
		if s.Channels[i].Units, err = readField(reader, unitsWidth); err != nil {
			return nil, err
		}
	}

	for i := range s.Channels {
		if s.Channels[i].SamplingFrequency, err = readFloat(reader, frequencyWidth, "channel sampling frequency"); err != nil {
			return nil, err
		}
	}

	for i := range s.Channels {
		if s.Channels[i].LowCutoff, err = readOptionalFloat(reader, cutoffWidth); err != nil {
			return nil, err
		}
	}

	for i := range s.Channels {
		if s.Channels[i].HighCutoff, err = readOptionalFloat(reader, cutoffWidth); err != nil {
			return nil, err
		}
	}

	for i := range s.Channels {
		if s.Channels[i].Notch, err = readOptionalFloat(reader, cutoffWidth); err != nil {
			return nil, err
		}
	}

	for i := range s.Channels {
		if s.Channels[i].Reference, err = readField(reader, referenceWidth); err != nil {
			return nil, err
		}
	}

	for i := range s.Channels {
		position, err := readInt64(reader, positionWidth, "acquisition position")
		if err != nil {
			return nil, err
		}
		s.Channels[i].AcquisitionPosition = int(position)
	}

	for i := range s.Channels {
		if s.Channels[i].Description, err = readField(reader, descriptionWidth); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// readField reads one fixed-width field and trims the space padding.
func readField(r io.Reader, width int) (string, error) {
	b := make([]byte, width)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("%w: truncated header: %w", ErrMalformed, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// readInt64 reads a required integer field.
func readInt64(r io.Reader, width int, name string) (int64, error) {
	s, err := readField(r, width)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing %s: %w", ErrMalformed, name, err)
	}
	return v, nil
}

// readFloat reads a required numeric field.
func readFloat(r io.Reader, width int, name string) (float64, error) {
	s, err := readField(r, width)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing %s: %w", ErrMalformed, name, err)
	}
	return v, nil
}

// readOptionalFloat reads an optional numeric field, yielding zero when the
// field is blank or unparseable. Read failures still propagate so a header
// truncated inside an optional field is diagnosed at that field.
func readOptionalFloat(r io.Reader, width int) (float64, error) {
	s, err := readField(r, width)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, nil
	}
	return v, nil
}
