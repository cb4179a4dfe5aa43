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
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenPSG/ieegbids/internal/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ieeg")
	f, err := os.Create(path)
	require.NoError(t, err)

	session := recording.Session{
		Version:           recording.Version1,
		RecordingID:       "Patient X implant, run 2",
		StartTimestamp:    1700000000000000,
		EndTimestamp:      1700000300000000,
		SamplingFrequency: 2048,
		HighpassCutoff:    0.1,
		LowpassCutoff:     500,
		Channels: []recording.Channel{
			{
				Label:               "LHH1",
				Kind:                recording.KindTimeSeries,
				Units:               "microvolts",
				SamplingFrequency:   2048,
				LowCutoff:           0.1,
				HighCutoff:          500,
				Notch:               50,
				Reference:           "mastoid",
				Description:         "left hippocampus head",
				AcquisitionPosition: 1,
			},
			{
				Label:               "TRIG",
				Kind:                recording.KindEvent,
				Units:               "a.u.",
				SamplingFrequency:   2048,
				AcquisitionPosition: 2,
			},
		},
	}

	require.NoError(t, recording.Write(f, session))
	require.NoError(t, f.Close())

	got, err := recording.OpenFile(path)
	require.NoError(t, err)

	session.ChannelCount = len(session.Channels)
	assert.Equal(t, session, *got)
}

func TestWriterChannelCountMismatch(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "session.ieeg"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	err = recording.Write(f, recording.Session{
		Version:      recording.Version1,
		ChannelCount: 3,
		Channels:     []recording.Channel{{Label: "LHH1"}},
	})
	require.Error(t, err)
}

func TestWriterTruncatesOverlongFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ieeg")
	f, err := os.Create(path)
	require.NoError(t, err)

	session := recording.Session{
		Version:           recording.Version1,
		RecordingID:       "Recording 1",
		SamplingFrequency: 1024,
		Channels: []recording.Channel{
			{
				Label:               "a-label-well-beyond-sixteen-bytes",
				Kind:                recording.KindTimeSeries,
				Units:               "microvolts",
				SamplingFrequency:   1024,
				AcquisitionPosition: 1,
			},
		},
	}

	require.NoError(t, recording.Write(f, session))
	require.NoError(t, f.Close())

	got, err := recording.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, got.Channels, 1)
	assert.Equal(t, "a-label-well-bey", got.Channels[0].Label)
}
