// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenPSG/ieegbids/internal/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandSubcommands(t *testing.T) {
	cmd := newRootCommand()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "convert")
	assert.Contains(t, names, "electrodes")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "config")
}

func writeSessionFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "session.ieeg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, recording.Write(f, recording.Session{
		Version:           recording.Version1,
		RecordingID:       "Recording 1",
		StartTimestamp:    0,
		EndTimestamp:      5_000_000,
		SamplingFrequency: 2048,
		Channels: []recording.Channel{
			{Label: "LHH1", Kind: recording.KindTimeSeries, Units: "microvolts", SamplingFrequency: 2048, AcquisitionPosition: 1},
			{Label: "LHH2", Kind: recording.KindTimeSeries, Units: "microvolts", SamplingFrequency: 2048, AcquisitionPosition: 2},
		},
	}))
	require.NoError(t, f.Close())
	return path
}

func TestConvertCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	sessionPath := writeSessionFixture(t, dir)
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"convert", sessionPath, "--output", outDir, "--config", filepath.Join(dir, "no-config.toml")})

	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var suffixes []string
	for _, entry := range entries {
		name := entry.Name()
		idx := strings.IndexByte(name, '_')
		require.Greater(t, idx, 0)
		suffixes = append(suffixes, name)
	}
	assert.True(t, strings.HasSuffix(suffixes[0], "_channels.tsv") || strings.HasSuffix(suffixes[1], "_channels.tsv"))
	assert.True(t, strings.HasSuffix(suffixes[0], "_ieeg.json") || strings.HasSuffix(suffixes[1], "_ieeg.json"))
}

func TestConvertCommandRejectsMissingSession(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"convert", filepath.Join(dir, "missing.ieeg"), "--output", dir, "--config", filepath.Join(dir, "no-config.toml")})

	require.Error(t, cmd.Execute())
}

func TestElectrodesCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	matrixPath := filepath.Join(dir, "electrodes.txt")
	require.NoError(t, os.WriteFile(matrixPath, []byte("1 2 3\n4 5 6\n"), 0o644))
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"electrodes", matrixPath, "--output", outDir, "--config", filepath.Join(dir, "no-config.toml")})

	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	sessionPath := writeSessionFixture(t, dir)

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"show", sessionPath, "--config", filepath.Join(dir, "no-config.toml")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Recording 1")
	assert.Contains(t, stdout.String(), "LHH1")
}
