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
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/OpenPSG/ieegbids/internal/sidecar"
)

// ErrBadMatrixShape reports a coordinate matrix whose column count is not
// the x, y, z triplet the electrodes sidecar requires.
var ErrBadMatrixShape = errors.New("coordinate matrix must have exactly 3 columns")

var electrodeColumns = []string{"name", "x", "y", "z"}

// DeriveElectrodes builds the electrodes sidecar table from an N×3
// coordinate matrix. Rows map one to one in input order; the name column is
// the 1-based row position, not any label carried in the source file.
func DeriveElectrodes(m mat.Matrix) (*sidecar.Table, error) {
	rows, cols := m.Dims()
	if cols != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMatrixShape, cols)
	}

	tbl := sidecar.NewTable(electrodeColumns...)
	for i := 0; i < rows; i++ {
		// The column count is fixed, so AppendRow cannot fail here.
		_ = tbl.AppendRow(
			sidecar.Number(float64(i+1)),
			sidecar.Number(m.At(i, 0)),
			sidecar.Number(m.At(i, 1)),
			sidecar.Number(m.At(i, 2)),
		)
	}
	return tbl, nil
}

// CoordSystemDescriptor returns the fixed _coordsystem.json descriptor
// tree. Coordinates are always reported in millimeters; the provenance
// fields are left for the curator.
func CoordSystemDescriptor() *sidecar.Tree {
	return sidecar.NewTree().
		Set("iEEGCoordinateSystem", sidecar.Text("Other")).
		Set("iEEGCoordinateSystemDescription", sidecar.Text("")).
		Set("iEEGCoordinateUnits", sidecar.Text("mm")).
		Set("iEEGCoordinateProcessingDescription", sidecar.Text("")).
		Set("iEEGCoordinateProcessingReference", sidecar.Text(""))
}
