// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command timescale computes datetime axis tick scales.
// It takes a time range as two positional arguments, each either
// Unix milliseconds or an RFC 3339 time, or a TOML file of
// scenarios with the -batch flag.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
)

//go:generate core generate

// Config is the configuration information for the timescale cli.
type Config struct {

	// Min is the start of the time range,
	// as Unix milliseconds or an RFC 3339 time.
	Min string `posarg:"0" required:"-"`

	// Max is the end of the time range,
	// as Unix milliseconds or an RFC 3339 time.
	Max string `posarg:"1" required:"-"`

	// Count is the number of data categories on the axis.
	Count int `default:"10"`

	// StepSize is the unit to divide the range into, in milliseconds.
	// If it is 0, the unit is selected from the range and Count.
	StepSize float64 `flag:"step,step-size"`

	// ScaleMin optionally pins the start of the axis,
	// as Unix milliseconds or an RFC 3339 time.
	ScaleMin string

	// ScaleMax optionally pins the end of the axis,
	// as Unix milliseconds or an RFC 3339 time.
	ScaleMax string

	// Offset is the length of the axis in pixels,
	// which determines the target number of ticks.
	Offset float64

	// Format is the output format.
	Format Formats `default:"text"`

	// Batch is a TOML file of scenarios to compute instead of
	// the range given by Min and Max.
	Batch string
}

func main() { //types:skip
	opts := cli.DefaultOptions("timescale", "Timescale computes tick scales for datetime chart axes.")
	opts.DefaultFiles = []string{"timescale.toml"}
	cli.Run(opts, &Config{}, Run)
}

// Run computes and prints the tick scales for the
// range or batch file given in the config.
func Run(c *Config) error { //cli:cmd -root
	slog.SetLogLoggerLevel(logx.UserLevel)
	scs := []Scenario{c.scenario()}
	if c.Batch != "" {
		b, err := OpenBatch(c.Batch)
		if err != nil {
			return err
		}
		scs = b.Scenarios
	}
	res, err := Compute(scs)
	if err != nil {
		return err
	}
	return Write(os.Stdout, c.Format, res)
}

// scenario returns the [Scenario] described by the config flags.
func (c *Config) scenario() Scenario {
	return Scenario{
		Min:      c.Min,
		Max:      c.Max,
		Count:    c.Count,
		StepSize: c.StepSize,
		ScaleMin: c.ScaleMin,
		ScaleMax: c.ScaleMax,
		Offset:   c.Offset,
	}
}
