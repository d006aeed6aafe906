// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/timescale/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTime(t *testing.T) {
	ms, err := ParseTime("1700006400000")
	require.NoError(t, err)
	assert.Equal(t, 1700006400000.0, ms)

	ms, err = ParseTime(" 2023-11-15T00:00:00Z ")
	require.NoError(t, err)
	assert.Equal(t, 1700006400000.0, ms)

	ms, err = ParseTime("2023-11-15T01:00:00.250+01:00")
	require.NoError(t, err)
	assert.Equal(t, 1700006400250.0, ms)

	_, err = ParseTime("yesterday")
	assert.Error(t, err)

	for _, s := range []string{"inf", "-Inf", "+infinity", "NaN"} {
		_, err = ParseTime(s)
		assert.Error(t, err, s)
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "2023-11-15T00:00:00Z", FormatTime(1700006400000))
	assert.Equal(t, "2023-11-15T00:00:00.25Z", FormatTime(1700006400250))
}

func TestScenarioOptions(t *testing.T) {
	sc := &Scenario{Min: "0", Max: "86400000", Count: 10}
	opts, err := sc.Options()
	require.NoError(t, err)
	assert.Equal(t, 86400000.0, opts.DataRange.Max)
	assert.Equal(t, 10, opts.RawCategoriesSize)
	assert.Nil(t, opts.Override)

	sc = &Scenario{Min: "0", Max: "86400000", StepSize: 1000, ScaleMax: "1970-01-02T01:00:00Z"}
	opts, err = sc.Options()
	require.NoError(t, err)
	require.NotNil(t, opts.Override)
	assert.Equal(t, 1000.0, *opts.Override.StepSize)
	assert.Nil(t, opts.Override.Min)
	assert.Equal(t, 90000000.0, *opts.Override.Max)

	_, err = (&Scenario{Min: "0"}).Options()
	assert.Error(t, err)
	_, err = (&Scenario{Min: "0", Max: "later"}).Options()
	assert.Error(t, err)
}

func TestCompute(t *testing.T) {
	res, err := Compute([]Scenario{
		{Name: "day", Min: "0", Max: "86400000", Count: 10},
		{Name: "instant", Min: "2023-11-15T00:00:00Z", Max: "2023-11-15T00:00:00Z", Count: 5},
		{Name: "seconds", Min: "0", Max: "86400000", Count: 10, StepSize: 1000},
	})
	require.NoError(t, err)
	require.Len(t, res, 3)

	assert.Equal(t, "day", res[0].Name)
	assert.Equal(t, datetime.Hour, res[0].Unit)
	assert.Equal(t, int64(0), res[0].Min)
	assert.Equal(t, int64(5*3600000), res[0].StepSize)
	assert.Len(t, res[0].Ticks, res[0].StepCount+1)
	assert.Equal(t, "1970-01-01T00:00:00Z", res[0].Ticks[0])
	assert.Equal(t, "1970-01-01T05:00:00Z", res[0].Ticks[1])

	assert.Equal(t, datetime.Second, res[1].Unit)
	assert.Equal(t, int64(1000), res[1].StepSize)
	assert.Equal(t, []string{"2023-11-15T00:00:00Z"}, res[1].Ticks)

	assert.Equal(t, datetime.Hour, res[2].Unit)
	assert.Equal(t, int64(0), res[2].StepSize%1000)
	assert.LessOrEqual(t, res[2].Min, int64(0))
	assert.GreaterOrEqual(t, res[2].Max, int64(86400000))
}

func TestComputeError(t *testing.T) {
	_, err := Compute([]Scenario{
		{Name: "ok", Min: "0", Max: "1000", Count: 1},
		{Name: "backwards", Min: "1000", Max: "0", Count: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backwards")

	_, err = Compute([]Scenario{{Name: "unbounded", Min: "0", Max: "inf", Count: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a finite time")
}

func TestOpenBatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "batch.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
[[Scenarios]]
Name = "one day"
Min = "2023-11-15T00:00:00Z"
Max = "2023-11-16T00:00:00Z"
Count = 10

[[Scenarios]]
Name = "pinned"
Min = "0"
Max = "60000"
Count = 3
StepSize = 1000
ScaleMin = "0"
`), 0666))

	b, err := OpenBatch(fn)
	require.NoError(t, err)
	require.Len(t, b.Scenarios, 2)
	assert.Equal(t, "one day", b.Scenarios[0].Name)
	assert.Equal(t, 10, b.Scenarios[0].Count)
	assert.Equal(t, 1000.0, b.Scenarios[1].StepSize)
	assert.Equal(t, "0", b.Scenarios[1].ScaleMin)

	res, err := Compute(b.Scenarios)
	require.NoError(t, err)
	assert.Equal(t, datetime.Hour, res[0].Unit)
	assert.Equal(t, int64(1700006400000), res[0].Min)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[Scenarios]]\nColor = \"red\"\n"), 0666))
	_, err = OpenBatch(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, nil, 0666))
	_, err = OpenBatch(empty)
	assert.Error(t, err)

	_, err = OpenBatch(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	res := []Result{{
		Name:      "day",
		Unit:      datetime.Hour,
		Min:       0,
		Max:       90000000,
		StepSize:  18000000,
		StepCount: 5,
		Ticks:     []string{"1970-01-01T00:00:00Z", "1970-01-01T05:00:00Z"},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, res))
	var js []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &js))
	require.Len(t, js, 1)
	assert.Equal(t, "hour", js[0]["unit"])
	assert.Equal(t, 18000000.0, js[0]["stepSize"])

	buf.Reset()
	require.NoError(t, Write(&buf, YAML, res))
	var ys []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &ys))
	assert.Equal(t, res, ys)

	buf.Reset()
	require.NoError(t, Write(&buf, Text, res))
	out := buf.String()
	assert.Contains(t, out, "day")
	assert.Contains(t, out, "18,000,000 ms")
	assert.Contains(t, out, "5h0m0s")
	assert.Contains(t, out, "  1970-01-01T05:00:00Z")

	assert.Error(t, Write(&buf, FormatsN, res))
}

func TestFormats(t *testing.T) {
	var f Formats
	require.NoError(t, f.SetString("yaml"))
	assert.Equal(t, YAML, f)
	assert.Error(t, f.SetString("xml"))
	assert.Equal(t, "json", JSON.String())
}
