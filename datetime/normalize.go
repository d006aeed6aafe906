// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"math"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/timescale/calc"
	"cogentcore.org/timescale/scale"
)

// Info is a time range expressed as a count of a time unit,
// shifted so that it starts at 0.
type Info struct {

	// DivisionNumber is the length of the unit in milliseconds.
	DivisionNumber float64

	// MinDate is the start of the range in units since the epoch.
	MinDate float64

	// Limit is the range in units, relative to MinDate.
	// Limit.Min is always 0.
	Limit minmax.F64
}

// Normalize converts the time range rng into an [Info] in terms of unit.
// The StepSize of ov, if set, replaces the unit length as the divisor,
// and its Min and Max replace those of rng.
func Normalize(rng minmax.F64, unit Unit, ov *scale.Override) (Info, error) {
	div := unit.Millis()
	if ov != nil && ov.StepSize != nil {
		div = *ov.StepSize
	}
	if !(div > 0) || math.IsInf(div, 0) {
		return Info{}, &InvalidStepSizeError{StepSize: div}
	}
	eff := scale.ResolveRange(rng, ov)
	if !validRange(eff) {
		return Info{}, &InvalidRangeError{Min: eff.Min, Max: eff.Max}
	}
	minDate := calc.Divide(eff.Min, div)
	maxDate := calc.Divide(eff.Max, div)
	return Info{
		DivisionNumber: div,
		MinDate:        minDate,
		Limit:          minmax.F64{Min: 0, Max: calc.Subtract(maxDate, minDate)},
	}, nil
}

// validRange returns whether rng has finite bounds with Min <= Max.
func validRange(rng minmax.F64) bool {
	if math.IsNaN(rng.Min) || math.IsNaN(rng.Max) || math.IsInf(rng.Min, 0) || math.IsInf(rng.Max, 0) {
		return false
	}
	return rng.Min <= rng.Max
}
