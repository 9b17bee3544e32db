// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset defines benchmark datasets and the rules for
// merging new measurements into them.
//
// A Dataset is a set of named series, each an x-sorted list of
// (input size, duration) points, plus the presentation settings used
// to chart it. The settings also declare the domain of x values the
// dataset accepts; see Validate.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// A Dataset is the persisted form of one benchmark dataset.
type Dataset struct {
	// GraphSettings holds presentation metadata. It is kept as raw
	// JSON so that keys this package does not know about survive a
	// load/save cycle unchanged. Use Settings to decode it.
	GraphSettings json.RawMessage `json:"graphSettings"`

	// GraphData is the list of series in display order.
	GraphData []Series `json:"graphData"`
}

// A Series is a named sequence of points. Values is sorted by
// ascending X and holds at most one point for each X.
type Series struct {
	Name   string  `json:"name"`
	Values []Point `json:"values"`
}

// A Point is a single measurement: X is the independent variable
// (for example the input size) and Y the observed duration.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Settings is the decoded form of the graphSettings keys this
// package understands.
type Settings struct {
	// XExpectedValues is the domain of X values accepted by Validate.
	XExpectedValues []float64 `json:"xExpectedValues"`

	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Legend Legend  `json:"legend"`
	XRange *Range  `json:"xRange,omitempty"`
	YRange *Range  `json:"yRange,omitempty"`
}

// Legend holds the axis captions.
type Legend struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// A Range is a closed axis interval.
type Range struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{GraphSettings: json.RawMessage("{}"), GraphData: []Series{}}
}

// Parse decodes a dataset document. An empty document yields an
// empty dataset.
func Parse(data []byte) (*Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}
	d := new(Dataset)
	if err := json.Unmarshal(data, d); err != nil {
		return nil, err
	}
	if len(d.GraphSettings) == 0 || bytes.Equal(d.GraphSettings, []byte("null")) {
		d.GraphSettings = json.RawMessage("{}")
	}
	if d.GraphData == nil {
		d.GraphData = []Series{}
	}
	return d, nil
}

// Marshal encodes d the way datasets are stored: two-space indented
// JSON followed by a newline.
func (d *Dataset) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Settings decodes d.GraphSettings.
func (d *Dataset) Settings() (*Settings, error) {
	s := new(Settings)
	if len(d.GraphSettings) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(d.GraphSettings, s); err != nil {
		return nil, fmt.Errorf("graphSettings: %v", err)
	}
	return s, nil
}

// Series returns the series named name, or nil.
func (d *Dataset) Series(name string) *Series {
	if i := d.index(name); i >= 0 {
		return &d.GraphData[i]
	}
	return nil
}

func (d *Dataset) index(name string) int {
	for i := range d.GraphData {
		if d.GraphData[i].Name == name {
			return i
		}
	}
	return -1
}

// A Measurement is one submitted run result.
type Measurement struct {
	// Name is the series the point belongs to. If empty, the
	// series name is derived from Date.
	Name string `json:"name,omitempty"`
	// Date is the run date, for example "2020-06-30".
	Date string `json:"date,omitempty"`

	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// ErrMalformed is returned by ParseMeasurement when a payload lacks
// a series name or one of its coordinates.
var ErrMalformed = errors.New("malformed measurement")

// ParseMeasurement decodes a measurement payload and checks that it
// names a series and carries both coordinates.
func ParseMeasurement(data []byte) (*Measurement, error) {
	m := new(Measurement)
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	switch {
	case m.X == nil:
		return nil, fmt.Errorf("%w: missing x", ErrMalformed)
	case m.Y == nil:
		return nil, fmt.Errorf("%w: missing y", ErrMalformed)
	case m.SeriesName() == "":
		return nil, fmt.Errorf("%w: missing name or date", ErrMalformed)
	}
	return m, nil
}

// SeriesName returns the series m belongs to.
func (m *Measurement) SeriesName() string {
	if m.Name != "" {
		return m.Name
	}
	return SeriesName(m.Date)
}

// Point returns the measured point. m must have both coordinates.
func (m *Measurement) Point() Point {
	return Point{X: *m.X, Y: *m.Y}
}

// SeriesName derives a series name from a run date: "2020-06-30"
// becomes "_2020_06_30". The leading underscore keeps the name a
// valid CSS class for chart viewers.
func SeriesName(date string) string {
	if date == "" {
		return ""
	}
	return "_" + strings.ReplaceAll(date, "-", "_")
}
