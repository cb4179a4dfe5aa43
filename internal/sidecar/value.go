// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package sidecar

// Value is a node in a sidecar descriptor tree. The set of implementations
// is closed: Scalar, Text, Sequence and *Tree.
type Value interface {
	isValue()
}

// Scalar is a single numeric value.
type Scalar float64

// Text is a free-text value.
type Text string

// Sequence is an ordered list of numeric values.
type Sequence []float64

// Tree is an ordered mapping from field name to value. Field order is the
// insertion order and is preserved through rendering.
type Tree struct {
	fields []Field
}

// Field is a single named entry in a Tree.
type Field struct {
	Name  string
	Value Value
}

func (Scalar) isValue()   {}
func (Text) isValue()     {}
func (Sequence) isValue() {}
func (*Tree) isValue()    {}

// NewTree returns an empty descriptor tree.
func NewTree() *Tree {
	return &Tree{}
}

// Set appends a field to the tree, or replaces the value of an existing
// field in place without disturbing its position.
func (t *Tree) Set(name string, v Value) *Tree {
	for i := range t.fields {
		if t.fields[i].Name == name {
			t.fields[i].Value = v
			return t
		}
	}
	t.fields = append(t.fields, Field{Name: name, Value: v})
	return t
}

// Fields returns the fields of the tree in order.
func (t *Tree) Fields() []Field {
	return t.fields
}

// Len returns the number of fields in the tree.
func (t *Tree) Len() int {
	return len(t.fields)
}
