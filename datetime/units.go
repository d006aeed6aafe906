// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

//go:generate core generate

// Unit is a granularity of time used to divide a datetime axis.
// Units are ordered from coarsest to finest.
type Unit int32 //enums:enum -transform lower

const (
	// Year is 365 days.
	Year Unit = iota

	// Month is 31 days.
	Month

	// Week is 7 days.
	Week

	// Date is one day.
	Date

	// Hour is one hour.
	Hour

	// Minute is one minute.
	Minute

	// Second is one second.
	Second
)

// unitMillis is the fixed length of each unit in milliseconds,
// ordered from coarsest to finest. Months and years are fixed
// approximations and not calendar aware.
var unitMillis = [...]struct {
	unit   Unit
	millis float64
}{
	{Year, 31536000000},
	{Month, 2678400000},
	{Week, 604800000},
	{Date, 86400000},
	{Hour, 3600000},
	{Minute, 60000},
	{Second, 1000},
}

// Millis returns the fixed length of the unit in milliseconds.
// It returns 0 for an invalid unit.
func (u Unit) Millis() float64 {
	if u < 0 || u >= UnitN {
		return 0
	}
	return unitMillis[u].millis
}

// Finer returns the next finer unit, or u itself if it is [Second].
func (u Unit) Finer() Unit {
	if u >= Second {
		return Second
	}
	return u + 1
}
