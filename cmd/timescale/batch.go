// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/timescale/datetime"
	"cogentcore.org/timescale/scale"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
)

// Scenario is one datetime axis to compute a scale for.
type Scenario struct {

	// Name labels the scenario in the output.
	Name string `toml:",omitempty"`

	// Min is the start of the time range,
	// as Unix milliseconds or an RFC 3339 time.
	Min string

	// Max is the end of the time range,
	// as Unix milliseconds or an RFC 3339 time.
	Max string

	// Count is the number of data categories on the axis.
	Count int

	// StepSize is the unit to divide the range into, in milliseconds.
	// If it is 0, the unit is selected from the range and Count.
	StepSize float64 `toml:",omitempty"`

	// ScaleMin optionally pins the start of the axis.
	ScaleMin string `toml:",omitempty"`

	// ScaleMax optionally pins the end of the axis.
	ScaleMax string `toml:",omitempty"`

	// Offset is the length of the axis in pixels.
	Offset float64 `toml:",omitempty"`
}

// Batch is a set of scenarios read from a TOML file.
type Batch struct {
	Scenarios []Scenario
}

// OpenBatch reads a [Batch] from the given TOML file.
// Unknown keys are an error.
func OpenBatch(filename string) (*Batch, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b := &Batch{}
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(b); err != nil {
		return nil, fmt.Errorf("timescale: reading batch %q: %w", filename, err)
	}
	if len(b.Scenarios) == 0 {
		return nil, fmt.Errorf("timescale: batch %q has no scenarios", filename)
	}
	return b, nil
}

// Options returns the [datetime.Options] for the scenario.
func (sc *Scenario) Options() (*datetime.Options, error) {
	if sc.Min == "" || sc.Max == "" {
		return nil, fmt.Errorf("timescale: %s: both min and max times are required", sc.label())
	}
	mn, err := ParseTime(sc.Min)
	if err != nil {
		return nil, err
	}
	mx, err := ParseTime(sc.Max)
	if err != nil {
		return nil, err
	}
	opts := &datetime.Options{
		DataRange:         minmax.F64{Min: mn, Max: mx},
		RawCategoriesSize: sc.Count,
		OffsetSize:        sc.Offset,
		ShowLabel:         true,
	}
	if sc.StepSize == 0 && sc.ScaleMin == "" && sc.ScaleMax == "" {
		return opts, nil
	}
	ov := &scale.Override{}
	if sc.StepSize != 0 {
		step := sc.StepSize
		ov.StepSize = &step
	}
	if sc.ScaleMin != "" {
		v, err := ParseTime(sc.ScaleMin)
		if err != nil {
			return nil, err
		}
		ov.Min = &v
	}
	if sc.ScaleMax != "" {
		v, err := ParseTime(sc.ScaleMax)
		if err != nil {
			return nil, err
		}
		ov.Max = &v
	}
	opts.Override = ov
	return opts, nil
}

// label returns the name of the scenario, or its range if it has none.
func (sc *Scenario) label() string {
	if sc.Name != "" {
		return sc.Name
	}
	return sc.Min + " to " + sc.Max
}

// ParseTime parses s as Unix milliseconds or, failing that,
// as an RFC 3339 time.
func ParseTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			return 0, fmt.Errorf("timescale: %q is not a finite time", s)
		}
		return ms, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("timescale: %q is neither Unix milliseconds nor an RFC 3339 time", s)
	}
	return float64(t.UnixMilli()), nil
}

// Compute computes the result for each scenario, concurrently.
// Results are in the same order as the scenarios.
func Compute(scs []Scenario) ([]Result, error) {
	res := make([]Result, len(scs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range scs {
		sc := &scs[i]
		g.Go(func() error {
			opts, err := sc.Options()
			if err != nil {
				return err
			}
			ds, err := datetime.Calculate(opts)
			if err != nil {
				return fmt.Errorf("timescale: %s: %w", sc.label(), err)
			}
			slog.Debug("computed scale", "scenario", sc.label(), "unit", ds.Unit, "stepSize", ds.StepSize)
			res[i] = NewResult(sc.Name, &ds)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
