// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"cogentcore.org/timescale/calc"
	"cogentcore.org/timescale/scale"
)

// Restore maps a scale computed over a range produced by [Normalize]
// back into timestamps, with the step size in milliseconds.
// It is the exact inverse of the shift and division done by Normalize.
func Restore(sc scale.Scale, minDate, divisionNumber float64) scale.Scale {
	sc.StepSize = calc.Multiply(sc.StepSize, divisionNumber)
	sc.Limit.Min = calc.Multiply(calc.Add(sc.Limit.Min, minDate), divisionNumber)
	sc.Limit.Max = calc.Multiply(calc.Add(sc.Limit.Max, minDate), divisionNumber)
	return sc
}
