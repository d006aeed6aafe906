// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc provides decimal-exact arithmetic on float64 values.
// Millisecond timestamps routinely carry 12 to 13 significant digits,
// so repeated binary floating point add / multiply / divide operations
// on them drift visibly. Each operation here converts its operands to
// their shortest decimal representation, computes the result exactly
// (or to [DivisionPrecision] fractional digits for division), and
// converts back to float64 once.
package calc

import "github.com/shopspring/decimal"

// DivisionPrecision is the number of fractional digits kept
// by [Divide] when the quotient does not terminate.
const DivisionPrecision = 16

// Add returns a + b.
func Add(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).InexactFloat64()
}

// Divide returns a / b. It panics if b is zero;
// callers are expected to validate divisors first.
func Divide(a, b float64) float64 {
	return decimal.NewFromFloat(a).DivRound(decimal.NewFromFloat(b), DivisionPrecision).InexactFloat64()
}
