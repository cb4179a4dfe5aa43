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
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/OpenPSG/ieegbids/internal/logging"
	"github.com/OpenPSG/ieegbids/internal/recording"
)

// ErrOutputLocation reports a missing or unusable output directory.
var ErrOutputLocation = errors.New("invalid output location")

// Converter derives sidecar files for one conversion run. Outputs are named
// with a timestamp prefix taken from Now, which defaults to the wall clock.
type Converter struct {
	Logger   *slog.Logger
	Defaults Defaults
	Now      func() time.Time
}

// ConvertSession derives the channels table and session descriptor for s
// and writes <stamp>_channels.tsv and <stamp>_ieeg.json into outDir.
// Channels are reordered in place by acquisition position first; ordering
// anomalies are logged as warnings and never abort the run. The returned
// paths are the files written.
func (c *Converter) ConvertSession(s *recording.Session, outDir string) ([]string, error) {
	if err := checkOutputDir(outDir); err != nil {
		return nil, err
	}

	SortByAcquisitionPosition(s.Channels)
	for _, anomaly := range PositionAnomalies(s.Channels) {
		c.logger().Warn(anomaly, "recording", s.RecordingID)
	}

	channels := DeriveChannels(s.Channels)
	descriptor := DeriveSessionDescriptor(s, c.Defaults)

	stamp := timestamp(c.now())
	written := make([]string, 0, 2)

	path := filepath.Join(outDir, stamp+"_channels.tsv")
	if err := writeFile(path, channels.RenderTSV()); err != nil {
		return written, err
	}
	written = append(written, path)
	c.logger().Info("wrote channels sidecar", "path", path, "channels", channels.Len())

	path = filepath.Join(outDir, stamp+"_ieeg.json")
	if err := writeFile(path, descriptor.Render()); err != nil {
		return written, err
	}
	written = append(written, path)
	c.logger().Info("wrote session descriptor", "path", path)

	return written, nil
}

// ConvertElectrodes derives the electrodes table from an N×3 coordinate
// matrix and writes <stamp>_electrodes.tsv and <stamp>_coordsystem.json
// into outDir. A matrix with the wrong column count is rejected before
// anything is written.
func (c *Converter) ConvertElectrodes(m mat.Matrix, outDir string) ([]string, error) {
	if err := checkOutputDir(outDir); err != nil {
		return nil, err
	}

	electrodes, err := DeriveElectrodes(m)
	if err != nil {
		return nil, err
	}
	descriptor := CoordSystemDescriptor()

	stamp := timestamp(c.now())
	written := make([]string, 0, 2)

	path := filepath.Join(outDir, stamp+"_electrodes.tsv")
	if err := writeFile(path, electrodes.RenderTSV()); err != nil {
		return written, err
	}
	written = append(written, path)
	c.logger().Info("wrote electrodes sidecar", "path", path, "electrodes", electrodes.Len())

	path = filepath.Join(outDir, stamp+"_coordsystem.json")
	if err := writeFile(path, descriptor.Render()); err != nil {
		return written, err
	}
	written = append(written, path)
	c.logger().Info("wrote coordinate system descriptor", "path", path)

	return written, nil
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Nop()
}

func (c *Converter) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// timestamp renders t as YYYYMMDD_HHMMSS_mmm for output file naming.
func timestamp(t time.Time) string {
	return fmt.Sprintf("%s_%03d", t.Format("20060102_150405"), t.Nanosecond()/int(time.Millisecond))
}

func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputLocation, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrOutputLocation, dir)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
