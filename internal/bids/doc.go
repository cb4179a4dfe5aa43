// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package bids derives BIDS iEEG sidecar metadata from recording session
// headers and electrode coordinate matrices.
//
// The derivation is total for well-formed input: every time-series channel
// yields exactly one sidecar row, every missing or unconfigured source value
// resolves to a documented default or the n/a sentinel, and data-quality
// anomalies in acquisition ordering are reported as warnings without
// aborting the conversion. Outputs are built fully in memory before any
// file is written, so a failed run leaves nothing on disk.
package bids
