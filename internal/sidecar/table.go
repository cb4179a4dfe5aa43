// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package sidecar

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NotApplicable is the sentinel emitted for values that are unknown, unset
// or not meaningful for a given row.
const NotApplicable = "n/a"

// Cell is a single tabular value: a number, a string, or the
// not-applicable sentinel.
type Cell struct {
	text string
}

// Number returns a numeric cell rendered in the shortest exact decimal form.
func Number(v float64) Cell {
	return Cell{text: formatNumber(v)}
}

// String returns a text cell.
func String(s string) Cell {
	return Cell{text: s}
}

// NA returns the not-applicable sentinel cell.
func NA() Cell {
	return Cell{text: NotApplicable}
}

// String returns the rendered form of the cell.
func (c Cell) String() string {
	return c.text
}

// Table is a flat record set with a fixed, ordered column list and ordered
// rows. Column and row order are preserved through rendering.
type Table struct {
	columns []string
	rows    [][]Cell
}

// NewTable returns an empty table with the given column names.
func NewTable(columns ...string) *Table {
	return &Table{columns: columns}
}

// AppendRow adds a row to the table. The cell count must match the column
// count.
func (t *Table) AppendRow(cells ...Cell) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("expected %d cells, got %d", len(t.columns), len(cells))
	}
	t.rows = append(t.rows, cells)
	return nil
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the rendered cell text of every row, in order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		rows[i] = cells
	}
	return rows
}

// RenderTSV renders the table as tab-separated text with a header row,
// terminated by a newline.
func (t *Table) RenderTSV() string {
	tw := table.NewWriter()
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(t.columns))
	for i, name := range t.columns {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range t.rows {
		r := make(table.Row, len(row))
		for i, c := range row {
			r[i] = c.String()
		}
		tw.AppendRow(r)
	}

	return tw.RenderTSV() + "\n"
}
