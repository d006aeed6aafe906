// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"testing"

	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

const (
	second = 1000.0
	minute = 60 * second
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 31 * day
	year   = 365 * day
)

func TestUnitMillis(t *testing.T) {
	assert.Equal(t, 31536000000.0, Year.Millis())
	assert.Equal(t, 2678400000.0, Month.Millis())
	assert.Equal(t, 604800000.0, Week.Millis())
	assert.Equal(t, 86400000.0, Date.Millis())
	assert.Equal(t, 3600000.0, Hour.Millis())
	assert.Equal(t, 60000.0, Minute.Millis())
	assert.Equal(t, 1000.0, Second.Millis())
	assert.Equal(t, 0.0, UnitN.Millis())
	assert.Equal(t, 0.0, Unit(-1).Millis())

	prev := Year.Millis() + 1
	for _, u := range UnitValues() {
		assert.Less(t, u.Millis(), prev, "%v", u)
		prev = u.Millis()
	}
}

func TestUnitFiner(t *testing.T) {
	assert.Equal(t, Month, Year.Finer())
	assert.Equal(t, Date, Week.Finer())
	assert.Equal(t, Second, Minute.Finer())
	assert.Equal(t, Second, Second.Finer())
}

func TestUnitText(t *testing.T) {
	assert.Equal(t, "date", Date.String())
	var u Unit
	assert.NoError(t, u.SetString("month"))
	assert.Equal(t, Month, u)
	assert.Error(t, u.SetString("fortnight"))

	b, err := Week.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "week", string(b))
	assert.NoError(t, u.UnmarshalText([]byte("minute")))
	assert.Equal(t, Minute, u)
}

func TestSelectUnit(t *testing.T) {
	tests := []struct {
		name  string
		max   float64
		count int
		want  Unit
	}{
		{"zero width", 0, 5, Second},
		{"zero width one category", 0, 1, Second},
		{"sub second", 500, 10, Second},
		{"one second", second, 10, Second},
		{"one and a half seconds", 1.5 * second, 10, Second},
		{"one minute many categories", minute, 10, Second},
		{"one minute one category", minute, 1, Minute},
		{"two minutes", 2 * minute, 10, Minute},
		{"one day many categories", day, 10, Hour},
		{"one day one category", day, 1, Date},
		{"six days", 6 * day, 10, Date},
		{"eight days", 8 * day, 3, Date},
		{"ten days one category", 10 * day, 1, Week},
		{"two weeks", 2 * week, 50, Week},
		{"one month", month, 50, Week},
		{"eleven months", 11 * month, 50, Month},
		{"one year", year, 50, Month},
		{"a year and a half", 1.5 * year, 50, Month},
		{"a year and a half one category", 1.5 * year, 1, Year},
		{"two years", 2 * year, 50, Year},
		{"a century", 100 * year, 3, Year},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, SelectUnit(minmax.F64{Min: 0, Max: test.max}, test.count))
		})
	}
}

func TestSelectUnitOffset(t *testing.T) {
	base := 1700000000000.0
	assert.Equal(t, Hour, SelectUnit(minmax.F64{Min: base, Max: base + day}, 10))
	assert.Equal(t, Second, SelectUnit(minmax.F64{Min: base, Max: base}, 5))
}

func TestSelectUnitMonotonic(t *testing.T) {
	for _, count := range []int{0, 1, 2, 5, 50} {
		prev := Second
		for diff := 1.0; diff < 200*year; diff *= 1.07 {
			u := SelectUnit(minmax.F64{Min: 0, Max: diff}, count)
			assert.LessOrEqual(t, u, prev, "diff %v count %d", diff, count)
			prev = u
		}
	}
}

func TestSelectUnitCategories(t *testing.T) {
	for _, um := range unitMillis[:len(unitMillis)-1] {
		rng := minmax.F64{Min: 0, Max: um.millis}
		assert.Equal(t, um.unit, SelectUnit(rng, 1), "%v", um.unit)
		assert.Equal(t, um.unit.Finer(), SelectUnit(rng, 2), "%v", um.unit)
		assert.Equal(t, um.unit.Finer(), SelectUnit(rng, 100), "%v", um.unit)
	}
}
