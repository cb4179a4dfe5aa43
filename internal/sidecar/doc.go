// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package sidecar holds the in-memory model for BIDS sidecar metadata and
// its renderers: a flat tabular record set written as tab-separated text,
// and an ordered nested key/value tree written as indented structured text.
//
// Field and column order is a correctness requirement, not cosmetics. BIDS
// tooling downstream matches sidecar columns positionally against the fixed
// schema, so both containers preserve insertion order exactly.
package sidecar
