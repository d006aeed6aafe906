// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cogentcore.org/timescale/datetime"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// timeLayout is RFC 3339 with optional milliseconds.
const timeLayout = "2006-01-02T15:04:05.999Z07:00"

// Result is the computed scale for one [Scenario], in output form.
type Result struct {
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Unit      datetime.Unit `json:"unit" yaml:"unit"`
	Min       int64         `json:"min" yaml:"min"`
	Max       int64         `json:"max" yaml:"max"`
	StepSize  int64         `json:"stepSize" yaml:"stepSize"`
	StepCount int           `json:"stepCount" yaml:"stepCount"`
	Ticks     []string      `json:"ticks" yaml:"ticks"`
}

// NewResult returns the [Result] for the given scale.
func NewResult(name string, ds *datetime.Scale) Result {
	r := Result{
		Name:      name,
		Unit:      ds.Unit,
		Min:       int64(ds.Limit.Min),
		Max:       int64(ds.Limit.Max),
		StepSize:  int64(ds.StepSize),
		StepCount: ds.StepCount,
	}
	for _, t := range ds.Ticks() {
		r.Ticks = append(r.Ticks, FormatTime(t))
	}
	return r
}

// FormatTime formats Unix milliseconds as an RFC 3339 time in UTC.
func FormatTime(ms float64) string {
	return time.UnixMilli(int64(ms)).UTC().Format(timeLayout)
}

// Write writes the results to w in the given format.
func Write(w io.Writer, format Formats, res []Result) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case Text:
		return writeText(w, res)
	}
	return fmt.Errorf("timescale: unknown format %v", format)
}

// writeText writes a human readable listing of the results,
// styled if w is a terminal.
func writeText(w io.Writer, res []Result) error {
	out := termenv.NewOutput(w)
	for i, r := range res {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if r.Name != "" {
			fmt.Fprintln(out, out.String(r.Name).Bold())
		}
		step := time.Duration(r.StepSize) * time.Millisecond
		fmt.Fprintf(out, "unit %s, step %s ms (%v), %d steps\n",
			out.String(r.Unit.String()).Foreground(out.Color("4")),
			humanize.Comma(r.StepSize), step, r.StepCount)
		for _, t := range r.Ticks {
			fmt.Fprintln(out, "  "+t)
		}
	}
	return nil
}
