// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130 with reference to the R
// implementation in the labeling package, ©2014 Justin Talbot (Licensed
// MIT+file LICENSE|Unlimited).

package scale

import (
	"math"

	"cogentcore.org/timescale/calc"
)

const (
	// dlamchE is the machine epsilon. For IEEE this is 2^{-53}.
	dlamchE = 1.0 / (1 << 53)

	// dlamchB is the radix of the machine (the base of the number system).
	dlamchB = 2

	// dlamchP is base * eps.
	dlamchP = dlamchB * dlamchE
)

// niceNumbers are the preferred step multipliers, Q in the paper,
// in order of preference.
var niceNumbers = []float64{1, 5, 2, 2.5, 4, 3}

// defaultWeights are the score weights described in the paper.
var defaultWeights = weights{
	simplicity: 0.25,
	coverage:   0.2,
	density:    0.5,
	legibility: 0.05,
}

// labelling is a selected set of evenly spaced labels.
type labelling struct {
	// n is the number of labels.
	n int
	// min and max are the first and last label values.
	min, max float64
	// step is the distance between labels.
	step float64
}

// talbotLinHanrahan returns an optimal labelling of approximately want labels
// for the data range [dMin, dMax], with the data range lying within
// [label_min, label_max]. If minStep is > 0, only steps that are integer
// multiples of minStep (and so at least minStep) are considered.
// Every labelling is given a legibility score of 1.
// dMin must not be greater than dMax.
func talbotLinHanrahan(dMin, dMax float64, want int, minStep float64) labelling {
	const eps = dlamchP * 100

	if want < 2 {
		want = 2
	}
	Q := niceNumbers
	w := &defaultWeights

	if r := dMax - dMin; r < eps {
		return linearLabelling(dMin, dMax, want, minStep)
	}

	type selection struct {
		// n is the number of labels selected.
		n int
		// start and fracStep give the first label as start * fracStep.
		start, fracStep float64
		// step is the distance between labels.
		step float64
		// score is the score for the selection.
		score float64
	}
	best := selection{score: -2}

outer:
	for skip := 1; ; skip++ {
		for _, q := range Q {
			sm := maxSimplicity(q, Q, skip)
			if w.score(sm, 1, 1, 1) < best.score {
				break outer
			}

			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if w.score(sm, 1, dm, 1) < best.score {
					break
				}

				delta := (dMax - dMin) / float64(have+1) / float64(skip) / q

				const maxExp = 309
				for mag := int(math.Ceil(math.Log10(delta))); mag < maxExp; mag++ {
					step := float64(skip) * q * math.Pow10(mag)

					cm := maxCoverage(dMin, dMax, step*float64(have-1))
					if w.score(sm, cm, dm, 1) < best.score {
						break
					}
					if minStep > 0 && !isMultiple(step, minStep) {
						continue
					}

					fracStep := step / float64(skip)
					kStep := step * float64(have-1)

					minStart := (math.Floor(dMax/step) - float64(have-1)) * float64(skip)
					maxStart := math.Ceil(dMax/step) * float64(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + kStep

						if dMin < lMin || lMax < dMax {
							continue
						}

						score := w.score(
							simplicity(q, Q, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
							1,
						)
						if score > best.score {
							best = selection{
								n:        have,
								start:    start,
								fracStep: fracStep,
								step:     step,
								score:    score,
							}
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		return linearLabelling(dMin, dMax, want, minStep)
	}

	lMin := calc.Multiply(best.start, best.fracStep)
	return labelling{
		n:    best.n,
		min:  lMin,
		max:  calc.Add(lMin, calc.Multiply(best.step, float64(best.n-1))),
		step: best.step,
	}
}

// linearLabelling returns want labels evenly spread from dMin,
// covering dMax, with the step rounded up to a multiple of minStep.
// It is used when no candidate satisfies the constraints.
func linearLabelling(dMin, dMax float64, want int, minStep float64) labelling {
	r := dMax - dMin
	step := r / float64(want-1)
	if minStep > 0 {
		step = math.Max(1, math.Ceil(step/minStep)) * minStep
	}
	if step <= 0 {
		return labelling{n: 1, min: dMin, max: dMax, step: 1}
	}
	n := stepCount(r, step)
	return labelling{
		n:    n + 1,
		min:  dMin,
		max:  calc.Add(dMin, calc.Multiply(float64(n), step)),
		step: step,
	}
}

// isMultiple returns whether v is an integer multiple of unit.
func isMultiple(v, unit float64) bool {
	r := v / unit
	return r >= 1-1e-9 && math.Abs(r-math.Round(r)) < 1e-9
}

// simplicity returns the simplicity score for how will the curent q, lMin, lMax,
// lStep and skip match the given nice numbers, Q.
func simplicity(q float64, Q []float64, skip int, lMin, lMax, lStep float64) float64 {
	const eps = dlamchP * 100

	for i, v := range Q {
		if v == q {
			m := math.Mod(lMin, lStep)
			v = 0
			if (m < eps || lStep-m < eps) && lMin <= 0 && 0 <= lMax {
				v = 1
			}
			return 1 - float64(i)/(float64(len(Q))-1) - float64(skip) + v
		}
	}
	panic("labelling: invalid q for Q")
}

// maxSimplicity returns the maximum simplicity for q, Q and skip.
func maxSimplicity(q float64, Q []float64, skip int) float64 {
	for i, v := range Q {
		if v == q {
			return 1 - float64(i)/(float64(len(Q))-1) - float64(skip) + 1
		}
	}
	panic("labelling: invalid q for Q")
}

// coverage returns the coverage score for based on the average
// squared distance between the extreme labels, lMin and lMax, and
// the extreme data points, dMin and dMax.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	max := dMax - lMax
	min := dMin - lMin
	return 1 - 0.5*(max*max+min*min)/(r*r)
}

// maxCoverage returns the maximum coverage achievable for the data
// range.
func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density returns the density score which measures the goodness of
// the labelling density compared to the user defined target
// based on the want parameter given to talbotLinHanrahan.
func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (math.Max(lMax, dMax) - math.Min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

// maxDensity returns the maximum density score achievable for have and want.
func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}

// weights is a helper type to calcuate the labelling scheme's total score.
type weights struct {
	simplicity, coverage, density, legibility float64
}

// score returns the score for a labelling scheme with simplicity, s,
// coverage, c, density, d and legibility l.
func (w *weights) score(s, c, d, l float64) float64 {
	return w.simplicity*s + w.coverage*c + w.density*d + w.legibility*l
}
