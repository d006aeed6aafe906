// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"math"

	"cogentcore.org/core/math32/minmax"
)

// SelectUnit returns the unit to divide the time range rng into,
// given the number of data categories count.
//
// It scans from [Year] to [Second] and stops at the first unit that
// fits into the range at least once. If that unit fits fewer than two
// times and fewer times than there are categories, the next finer unit
// is returned instead, so that the axis does not end up with a single
// division. A zero-width range returns [Second].
func SelectUnit(rng minmax.F64, count int) Unit {
	diff := rng.Max - rng.Min
	if diff == 0 {
		return Second
	}
	for _, um := range unitMillis {
		divided := math.Floor(diff / um.millis)
		if divided <= 0 {
			continue
		}
		if um.unit < Second && divided < 2 && divided < float64(count) {
			return um.unit.Finer()
		}
		return um.unit
	}
	return Second
}
