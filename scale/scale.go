// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale computes numeric tick scales for chart axes:
// a "nice" pair of limits that contains the data, and the step
// between successive ticks.
package scale

import (
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/timescale/calc"
)

// Scale is a tick scale over a numeric domain.
type Scale struct {

	// Limit is the range covered by the ticks,
	// from the first tick to the last one.
	Limit minmax.F64

	// StepSize is the distance between successive ticks.
	StepSize float64

	// StepCount is the number of steps between Limit.Min and Limit.Max.
	StepCount int
}

// Ticks returns the tick values of the scale: Limit.Min and each
// following multiple of StepSize that does not exceed Limit.Max.
func (sc *Scale) Ticks() []float64 {
	if sc.StepSize <= 0 {
		return []float64{sc.Limit.Min}
	}
	n := sc.StepCount
	if n <= 0 {
		n = stepCount(sc.Limit.Max-sc.Limit.Min, sc.StepSize)
	}
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		v := calc.Add(sc.Limit.Min, calc.Multiply(float64(i), sc.StepSize))
		if v > sc.Limit.Max {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// Override holds values that a user has pinned for an axis.
// A nil field has not been set.
type Override struct {

	// StepSize pins the step size.
	StepSize *float64 `json:",omitempty" yaml:",omitempty"`

	// Min pins the lower limit.
	Min *float64 `json:",omitempty" yaml:",omitempty"`

	// Max pins the upper limit.
	Max *float64 `json:",omitempty" yaml:",omitempty"`
}

// ResolveRange returns the range to compute a scale for:
// the Min and Max of ov, when set, take precedence over data.
func ResolveRange(data minmax.F64, ov *Override) minmax.F64 {
	rng := data
	if ov == nil {
		return rng
	}
	if ov.Min != nil {
		rng.Min = *ov.Min
	}
	if ov.Max != nil {
		rng.Max = *ov.Max
	}
	return rng
}

// Options are the inputs to a [Calculator].
type Options struct {

	// DataRange is the range of the data values.
	DataRange minmax.F64

	// Override optionally pins the step size and limits.
	Override *Override

	// OffsetSize is the length of the axis in pixels,
	// which determines the target number of ticks.
	// If it is <= 0, [DefaultTicks] ticks are targeted.
	OffsetSize float64

	// MinStepSize is the smallest allowed step size.
	// When > 0 the step is also kept an integer multiple of it.
	MinStepSize float64

	// ShowLabel is whether tick labels will be drawn.
	// It is carried for calculators that account for label extents;
	// [Coordinate] does not.
	ShowLabel bool
}

// Calculator computes a [Scale] from [Options].
type Calculator interface {
	Calculate(opts *Options) (Scale, error)
}

// CalculatorFunc is a function that implements [Calculator].
type CalculatorFunc func(opts *Options) (Scale, error)

// Calculate calls f(opts).
func (f CalculatorFunc) Calculate(opts *Options) (Scale, error) {
	return f(opts)
}

// Default is the [Calculator] used when none is specified.
var Default Calculator = CalculatorFunc(Coordinate)
