// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/timescale/calc"
)

const (
	// PixelsPerStep is the target distance in pixels between ticks.
	PixelsPerStep = 88

	// DefaultTicks is the target number of ticks when the axis size is unknown.
	DefaultTicks = 6

	// MaxTicks is the largest target number of ticks.
	MaxTicks = 100
)

// TargetTicks returns the number of ticks to aim for on an axis
// that is offsetSize pixels long, at most [MaxTicks].
func TargetTicks(offsetSize float64) int {
	if offsetSize <= 0 || math.IsNaN(offsetSize) {
		return DefaultTicks
	}
	n := math.Ceil(offsetSize/PixelsPerStep) + 1
	if n > MaxTicks {
		return MaxTicks
	}
	return int(n)
}

// Coordinate is the default [Calculator]. It resolves the range from
// the data and any [Override], then selects nice limits that contain
// the range, with about [TargetTicks] ticks, using the extended
// labelling algorithm of Talbot, Lin and Hanrahan.
// An Override StepSize is used as is, with the limits snapped outward
// to multiples of it. Override Min and Max are kept exactly.
// A nil opts is the same as the zero Options.
func Coordinate(opts *Options) (Scale, error) {
	if opts == nil {
		opts = &Options{}
	}
	rng := ResolveRange(opts.DataRange, opts.Override)
	if math.IsNaN(rng.Min) || math.IsNaN(rng.Max) || math.IsInf(rng.Min, 0) || math.IsInf(rng.Max, 0) {
		return Scale{}, fmt.Errorf("scale: invalid range: %v to %v", rng.Min, rng.Max)
	}
	if rng.Max < rng.Min {
		return Scale{}, fmt.Errorf("scale: invalid range: min %v is greater than max %v", rng.Min, rng.Max)
	}
	ov := opts.Override
	if ov != nil && ov.StepSize != nil {
		step := *ov.StepSize
		if !(step > 0) || math.IsInf(step, 0) {
			return Scale{}, fmt.Errorf("scale: invalid step size %v", step)
		}
		return pinned(fixedStep(rng, step), ov), nil
	}

	if rng.Min == rng.Max {
		step := math.Max(opts.MinStepSize, 1)
		return Scale{Limit: rng, StepSize: step}, nil
	}

	lb := talbotLinHanrahan(rng.Min, rng.Max, TargetTicks(opts.OffsetSize), opts.MinStepSize)
	sc := Scale{
		Limit:     minmax.F64{Min: lb.min, Max: lb.max},
		StepSize:  lb.step,
		StepCount: lb.n - 1,
	}
	return pinned(sc, ov), nil
}

// fixedStep returns the scale with the given step whose
// limits are the multiples of step just containing rng.
func fixedStep(rng minmax.F64, step float64) Scale {
	lo := math.Floor(calc.Divide(rng.Min, step))
	hi := math.Ceil(calc.Divide(rng.Max, step))
	return Scale{
		Limit:     minmax.F64{Min: calc.Multiply(lo, step), Max: calc.Multiply(hi, step)},
		StepSize:  step,
		StepCount: int(hi - lo),
	}
}

// pinned applies the Min and Max of ov, if set, to the limits of sc.
func pinned(sc Scale, ov *Override) Scale {
	if ov == nil || (ov.Min == nil && ov.Max == nil) {
		return sc
	}
	if ov.Min != nil {
		sc.Limit.Min = *ov.Min
	}
	if ov.Max != nil {
		sc.Limit.Max = *ov.Max
	}
	sc.StepCount = stepCount(sc.Limit.Max-sc.Limit.Min, sc.StepSize)
	return sc
}

// stepCount returns the number of steps of size step needed to cover r.
func stepCount(r, step float64) int {
	if r <= 0 || step <= 0 {
		return 0
	}
	return int(math.Ceil(calc.Divide(r, step)))
}
