// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime computes tick scales for time-valued chart axes.
//
// A raw range of Unix millisecond timestamps is divided into a [Unit]
// chosen by [SelectUnit], converted to a count of that unit starting
// at 0 by [Normalize], passed to a numeric [scale.Calculator] with a
// minimum step of one unit, and mapped back to timestamps by [Restore].
// All arithmetic on millisecond values is decimal exact, using the
// calc package.
package datetime

import (
	"log/slog"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/timescale/scale"
)

// Options are the inputs to [Calculate].
type Options struct {

	// DataRange is the range of the data, in Unix milliseconds.
	DataRange minmax.F64

	// RawCategoriesSize is the number of data categories on the axis.
	RawCategoriesSize int

	// Override optionally pins the divisor, in milliseconds,
	// and the limits, in Unix milliseconds.
	Override *scale.Override

	// OffsetSize is the length of the axis in pixels.
	// It is passed through to the Calculator.
	OffsetSize float64

	// ShowLabel is whether tick labels are drawn.
	// It is passed through to the Calculator.
	ShowLabel bool

	// Calculator computes the numeric scale over the normalized range.
	// If nil, [scale.Default] is used.
	Calculator scale.Calculator
}

// Scale is a tick scale for a datetime axis. Limit is in Unix
// milliseconds and StepSize is in milliseconds.
type Scale struct {
	scale.Scale

	// Unit is the unit the range was divided into.
	// If an override step size was used, it is the unit
	// that would have been used without it.
	Unit Unit
}

// Calculate computes the datetime tick scale for the given options.
// It returns an [*InvalidRangeError] if the data or override range has
// Max < Min or a bound that is not finite, and an [*InvalidStepSizeError]
// if the override step size is not positive. A nil opts is the same as
// the zero Options.
func Calculate(opts *Options) (Scale, error) {
	if opts == nil {
		opts = &Options{}
	}
	rng := opts.DataRange
	if !validRange(rng) {
		return Scale{}, &InvalidRangeError{Min: rng.Min, Max: rng.Max}
	}
	unit := SelectUnit(rng, opts.RawCategoriesSize)
	info, err := Normalize(rng, unit, opts.Override)
	if err != nil {
		return Scale{}, err
	}
	slog.Debug("datetime scale", "unit", unit, "divisionNumber", info.DivisionNumber, "minDate", info.MinDate, "limit", info.Limit.Max)

	sc, err := calculator(opts).Calculate(&scale.Options{
		DataRange:   info.Limit,
		OffsetSize:  opts.OffsetSize,
		MinStepSize: 1,
		ShowLabel:   opts.ShowLabel,
	})
	if err != nil {
		return Scale{}, err
	}
	return Scale{Scale: Restore(sc, info.MinDate, info.DivisionNumber), Unit: unit}, nil
}

// calculator returns the [scale.Calculator] to use for opts.
func calculator(opts *Options) scale.Calculator {
	if opts.Calculator != nil {
		return opts.Calculator
	}
	return scale.Default
}
