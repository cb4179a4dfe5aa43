// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package recording_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OpenPSG/ieegbids/internal/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, recording.Write(&buf, recording.Session{Version: "1"}))

	b := buf.Bytes()
	copy(b[0:8], []byte("9       "))

	_, err := recording.Open(bytes.NewReader(b))
	require.Error(t, err)
	assert.ErrorIs(t, err, recording.ErrMalformed)
}

func TestOpenRejectsTruncatedHeader(t *testing.T) {
	_, err := recording.Open(strings.NewReader("1       "))
	require.Error(t, err)
	assert.ErrorIs(t, err, recording.ErrMalformed)
}

func TestOpenRejectsGarbageTimestamp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, recording.Write(&buf, recording.Session{
		Version:     recording.Version1,
		RecordingID: "Recording 1",
	}))

	b := buf.Bytes()
	// Start timestamp sits right after the version and recording ID fields.
	copy(b[88:108], []byte("not-a-number        "))

	_, err := recording.Open(bytes.NewReader(b))
	require.Error(t, err)
	assert.ErrorIs(t, err, recording.ErrMalformed)
	assert.Contains(t, err.Error(), "start timestamp")
}

func TestOpenRejectsTruncationInsideOptionalField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, recording.Write(&buf, recording.Session{
		Version:           recording.Version1,
		RecordingID:       "Recording 1",
		SamplingFrequency: 2048,
		HighpassCutoff:    0.1,
		LowpassCutoff:     500,
	}))

	// Cut the header mid-way through the highpass cutoff field, which
	// starts right after the sampling frequency at offset 136.
	_, err := recording.Open(bytes.NewReader(buf.Bytes()[:140]))
	require.Error(t, err)
	assert.ErrorIs(t, err, recording.ErrMalformed)
	assert.Contains(t, err.Error(), "truncated")
}

func TestOpenBlankCutoffsReadAsZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, recording.Write(&buf, recording.Session{
		Version:           recording.Version1,
		RecordingID:       "Recording 1",
		SamplingFrequency: 2048,
		Channels: []recording.Channel{
			{
				Label:               "LHH1",
				Kind:                recording.KindTimeSeries,
				Units:               "microvolts",
				SamplingFrequency:   2048,
				AcquisitionPosition: 1,
			},
		},
	}))

	s, err := recording.Open(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Zero(t, s.HighpassCutoff)
	assert.Zero(t, s.LowpassCutoff)
	require.Len(t, s.Channels, 1)
	assert.Zero(t, s.Channels[0].LowCutoff)
	assert.Zero(t, s.Channels[0].HighCutoff)
	assert.Zero(t, s.Channels[0].Notch)
}
