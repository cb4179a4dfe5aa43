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
	"github.com/OpenPSG/ieegbids/internal/recording"
	"github.com/OpenPSG/ieegbids/internal/sidecar"
)

// Defaults carries curator-supplied values folded into the session
// descriptor. Zero values leave the corresponding descriptor fields as the
// empty skeleton for later curation.
type Defaults struct {
	TaskName           string
	Manufacturer       string
	InstitutionName    string
	PowerLineFrequency float64
}

// DeriveSessionDescriptor builds the _ieeg.json descriptor tree for one
// session. The field set and order are fixed; every field is present even
// when empty, so the output is always a schema-valid skeleton a curator can
// fill in. Only sampling frequency, the hardware filter cutoffs and the
// recording duration are taken from the source; channel-kind counts stay
// zero because the source format does not classify channels into the BIDS
// type buckets.
func DeriveSessionDescriptor(s *recording.Session, d Defaults) *sidecar.Tree {
	// Timestamps are microseconds since the epoch; widen before
	// subtracting so the difference survives the float conversion.
	duration := (float64(s.EndTimestamp) - float64(s.StartTimestamp)) / 1e6

	hardwareFilters := sidecar.NewTree().
		Set("HighpassFilter", sidecar.NewTree().
			Set("CutoffFrequency", sidecar.Scalar(s.HighpassCutoff))).
		Set("LowpassFilter", sidecar.NewTree().
			Set("CutoffFrequency", sidecar.Scalar(s.LowpassCutoff)))

	// One place defines the full descriptor shape and its defaults.
	return sidecar.NewTree().
		Set("TaskName", sidecar.Text(d.TaskName)).
		Set("TaskDescription", sidecar.Text("")).
		Set("Instructions", sidecar.Text("")).
		Set("InstitutionName", sidecar.Text(d.InstitutionName)).
		Set("InstitutionAddress", sidecar.Text("")).
		Set("Manufacturer", sidecar.Text(d.Manufacturer)).
		Set("ManufacturersModelName", sidecar.Text("")).
		Set("SoftwareVersions", sidecar.Text("")).
		Set("DeviceSerialNumber", sidecar.Text("")).
		Set("iEEGReference", sidecar.Text("")).
		Set("SamplingFrequency", sidecar.Scalar(s.SamplingFrequency)).
		Set("PowerLineFrequency", sidecar.Scalar(d.PowerLineFrequency)).
		Set("SoftwareFilters", sidecar.Text(sidecar.NotApplicable)).
		Set("HardwareFilters", hardwareFilters).
		Set("ElectrodeManufacturer", sidecar.Text("")).
		Set("ElectrodeManufacturersModelName", sidecar.Text("")).
		Set("ECOGChannelCount", sidecar.Scalar(0)).
		Set("SEEGChannelCount", sidecar.Scalar(0)).
		Set("EEGChannelCount", sidecar.Scalar(0)).
		Set("EOGChannelCount", sidecar.Scalar(0)).
		Set("ECGChannelCount", sidecar.Scalar(0)).
		Set("EMGChannelCount", sidecar.Scalar(0)).
		Set("MiscChannelCount", sidecar.Scalar(0)).
		Set("TriggerChannelCount", sidecar.Scalar(0)).
		Set("RecordingDuration", sidecar.Scalar(duration)).
		Set("RecordingType", sidecar.Text("")).
		Set("EpochLength", sidecar.Scalar(0)).
		Set("iEEGGroundElectrode", sidecar.Text("")).
		Set("iEEGPlacementScheme", sidecar.Text("")).
		Set("iEEGElectrodeGroups", sidecar.Text("")).
		Set("SubjectArtefactDescription", sidecar.Text("")).
		Set("ElectricalStimulation", sidecar.Text("")).
		Set("ElectricalStimulationParameters", sidecar.Text(""))
}
