// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package coords loads electrode coordinate matrices from delimited text
// files into gonum dense matrices.
package coords

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyMatrix reports a coordinate file with no data rows.
var ErrEmptyMatrix = errors.New("coordinate file contains no data rows")

// ErrRaggedMatrix reports rows with inconsistent column counts.
var ErrRaggedMatrix = errors.New("coordinate rows have inconsistent column counts")

// LoadFile reads a whitespace- or comma-delimited numeric matrix from path.
// Blank lines and lines starting with '#' are skipped.
func LoadFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening coordinate file: %w", err)
	}
	defer f.Close()

	var (
		data []float64
		rows int
		cols int
	)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d", ErrRaggedMatrix, line, len(fields), cols)
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing coordinate on line %d: %w", line, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading coordinate file: %w", err)
	}

	if rows == 0 {
		return nil, ErrEmptyMatrix
	}

	return mat.NewDense(rows, cols, data), nil
}
