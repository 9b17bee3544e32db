// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRoundTrip(t *testing.T) {
	const doc = `{
  "graphSettings": {
    "xExpectedValues": [
      1,
      100
    ],
    "custom": "kept"
  },
  "graphData": [
    {
      "name": "_2020_06_30",
      "values": [
        {
          "x": 1,
          "y": 500
        }
      ]
    }
  ]
}
`
	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := d.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if diff := cmp.Diff(doc, string(out)); diff != "" {
		t.Errorf("round trip changed the document: (-want +got)\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, doc := range []string{"", "  \n", `{}`, `{"graphSettings": null}`} {
		d, err := Parse([]byte(doc))
		if err != nil {
			t.Errorf("Parse(%q): %v", doc, err)
			continue
		}
		if string(d.GraphSettings) != "{}" || d.GraphData == nil || len(d.GraphData) != 0 {
			t.Errorf("Parse(%q) = %+v, want empty dataset", doc, d)
		}
	}
}

func TestSettings(t *testing.T) {
	d, err := Parse([]byte(`{"graphSettings": {"xExpectedValues": [1, 4000], "width": 800, "legend": {"x": "locations", "y": "ms"}, "yRange": {"start": 0, "stop": 60}}}`))
	if err != nil {
		t.Fatal(err)
	}
	s, err := d.Settings()
	if err != nil {
		t.Fatal(err)
	}
	want := &Settings{
		XExpectedValues: []float64{1, 4000},
		Width:           800,
		Legend:          Legend{X: "locations", Y: "ms"},
		YRange:          &Range{Start: 0, Stop: 60},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Settings: (-want +got)\n%s", diff)
	}
}

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		in     string
		series string
		p      Point
		err    bool
	}{
		{`{"name": "run_a", "x": 100, "y": 900}`, "run_a", Point{100, 900}, false},
		{`{"date": "2020-06-30", "x": 1, "y": 2}`, "_2020_06_30", Point{1, 2}, false},
		{`{"name": "n", "date": "2020-06-30", "x": 0, "y": 0}`, "n", Point{0, 0}, false},
		{`{"name": "run_a", "y": 900}`, "", Point{}, true},
		{`{"name": "run_a", "x": 900}`, "", Point{}, true},
		{`{"x": 1, "y": 2}`, "", Point{}, true},
	}
	for _, test := range tests {
		m, err := ParseMeasurement([]byte(test.in))
		if test.err {
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("ParseMeasurement(%s) = %v, want ErrMalformed", test.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMeasurement(%s): %v", test.in, err)
			continue
		}
		if m.SeriesName() != test.series || m.Point() != test.p {
			t.Errorf("ParseMeasurement(%s) = %s %v, want %s %v", test.in, m.SeriesName(), m.Point(), test.series, test.p)
		}
	}
}
