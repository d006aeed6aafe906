// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "fmt"

// InvalidRangeError is returned when a time range has Max < Min
// or a bound that is not finite.
type InvalidRangeError struct {
	Min, Max float64
}

func (e *InvalidRangeError) Error() string {
	if e.Min > e.Max {
		return fmt.Sprintf("datetime: invalid range: min %v is greater than max %v", e.Min, e.Max)
	}
	return fmt.Sprintf("datetime: invalid range: %v to %v is not finite", e.Min, e.Max)
}

// InvalidStepSizeError is returned when an override step size
// cannot be used as a divisor, because it is not positive.
type InvalidStepSizeError struct {
	StepSize float64
}

func (e *InvalidStepSizeError) Error() string {
	return fmt.Sprintf("datetime: invalid step size %v: must be positive", e.StepSize)
}
