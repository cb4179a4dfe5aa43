// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package recording

type Version string

const (
	// Version1 represents the current revision of the session header format.
	Version1 Version = "1"
)

// ChannelKind tags the role of a channel within a recording.
type ChannelKind int

const (
	// KindTimeSeries marks channels carrying sampled waveform data. Only
	// these channels are eligible for sidecar output.
	KindTimeSeries ChannelKind = 1
	// KindEvent marks digital event/trigger channels.
	KindEvent ChannelKind = 2
	// KindAnnotation marks free-text annotation channels.
	KindAnnotation ChannelKind = 3
)

func (k ChannelKind) String() string {
	switch k {
	case KindTimeSeries:
		return "time-series"
	case KindEvent:
		return "event"
	case KindAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// Session represents the header of a recording session.
type Session struct {
	Version           Version   // Version of the session header format (usually "1")
	RecordingID       string    // Identification of the recording session
	StartTimestamp    int64     // Start of the recording, microseconds since the Unix epoch
	EndTimestamp      int64     // End of the recording, microseconds since the Unix epoch
	SamplingFrequency float64   // Acquisition sampling frequency in Hz
	HighpassCutoff    float64   // Hardware highpass cutoff in Hz, 0 if not configured
	LowpassCutoff     float64   // Hardware lowpass cutoff in Hz, 0 if not configured
	ChannelCount      int       // Number of channels in the session
	Channels          []Channel // Details of each channel
}

// Channel represents the characteristics of one recorded channel.
type Channel struct {
	Label               string      // Label of the channel (e.g., LHH1)
	Kind                ChannelKind // Role of the channel within the recording
	Units               string      // Unit description of the sampled values (e.g., microvolts)
	SamplingFrequency   float64     // Per-channel sampling frequency in Hz
	LowCutoff           float64     // Highpass filter cutoff in Hz, 0 if not configured
	HighCutoff          float64     // Lowpass filter cutoff in Hz, 0 if not configured
	Notch               float64     // Notch filter frequency in Hz, 0 if not configured
	Reference           string      // Reference description, empty if not entered
	Description         string      // Free-text channel description
	AcquisitionPosition int         // Physical/wiring order of the channel during acquisition
}
