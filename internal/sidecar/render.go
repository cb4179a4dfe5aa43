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
	"strconv"
	"strings"
)

// Render serializes the tree to indented structured text. Nesting is
// indented by one tab per level and field order follows insertion order.
func (t *Tree) Render() string {
	var b strings.Builder
	renderTree(&b, t, "")
	b.WriteString("\n")
	return b.String()
}

func renderTree(b *strings.Builder, t *Tree, indent string) {
	b.WriteString("{")
	inner := indent + "\t"
	for i, f := range t.fields {
		b.WriteString("\n")
		b.WriteString(inner)
		b.WriteString(`"`)
		b.WriteString(f.Name)
		b.WriteString(`": `)
		renderValue(b, f.Value, inner)
		if i < len(t.fields)-1 {
			b.WriteString(",")
		}
	}
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("}")
}

// renderValue emits one value. Multi-element sequences become dense arrays,
// trees recurse, scalars use the shortest exact decimal form, text is quoted
// verbatim and anything empty collapses to an empty quoted string. A
// single-element sequence is emitted as its scalar, not as an array.
func renderValue(b *strings.Builder, v Value, indent string) {
	switch v := v.(type) {
	case Sequence:
		switch len(v) {
		case 0:
			b.WriteString(`""`)
		case 1:
			b.WriteString(formatNumber(v[0]))
		default:
			b.WriteString("[")
			for i, n := range v {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString(formatNumber(n))
			}
			b.WriteString("]")
		}
	case *Tree:
		if v == nil || len(v.fields) == 0 {
			b.WriteString(`""`)
			return
		}
		renderTree(b, v, indent)
	case Scalar:
		b.WriteString(formatNumber(float64(v)))
	case Text:
		b.WriteString(`"`)
		b.WriteString(string(v))
		b.WriteString(`"`)
	default:
		b.WriteString(`""`)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
