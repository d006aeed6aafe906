// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Formats are the output formats of the timescale cli.
type Formats int32 //enums:enum -transform lower

const (
	// Text is a human readable listing of each scale and its ticks.
	Text Formats = iota

	// YAML is a YAML sequence of results.
	YAML

	// JSON is a JSON array of results.
	JSON
)
