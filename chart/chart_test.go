// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"testing"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/google/go-cmp/cmp"
)

func seriesNamed(n int) []dataset.Series {
	var s []dataset.Series
	for i := 0; i < n; i++ {
		s = append(s, dataset.Series{Name: fmt.Sprint(i)})
	}
	return s
}

func names(series []dataset.Series) []string {
	var out []string
	for _, s := range series {
		out = append(out, s.Name)
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		n, max int
		want   []string
	}{
		{0, 5, nil},
		{3, 5, []string{"0", "1", "2"}},
		{5, 5, []string{"0", "1", "2", "3", "4"}},
		{6, 5, []string{"0", "2", "4", "5"}},
		{12, 5, []string{"0", "3", "6", "9", "11"}},
		{10, 5, []string{"0", "3", "6", "9"}},
		{7, -1, []string{"0", "1", "2", "3", "4", "5", "6"}},
	}
	for _, test := range tests {
		got := names(Select(seriesNamed(test.n), test.max))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Select(%d series, %d): (-want +got)\n%s", test.n, test.max, diff)
		}
	}
}

func testDataset() *dataset.Dataset {
	d := dataset.New()
	d.GraphSettings = json.RawMessage(`{"xExpectedValues":[1,100,250],"width":400,"height":300,"legend":{"x":"locations","y":"ms"},"xRange":{"start":0,"stop":300}}`)
	d = dataset.Upsert(d, "run_a", dataset.Point{X: 1, Y: 500})
	d = dataset.Upsert(d, "run_a", dataset.Point{X: 100, Y: 900})
	d = dataset.Upsert(d, "run_b", dataset.Point{X: 250, Y: 100})
	return d
}

func TestRenderPNG(t *testing.T) {
	data, err := Render(testDataset(), Options{Format: "png"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("image is %dx%d, want 400x300", b.Dx(), b.Dy())
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := Render(testDataset(), Options{Format: "svg"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("Render(svg) output does not contain an <svg> element")
	}
}

func TestRenderEmpty(t *testing.T) {
	if _, err := Render(dataset.New(), Options{Format: "png"}); err != nil {
		t.Errorf("Render(empty dataset): %v", err)
	}
}

func TestRenderBadFormat(t *testing.T) {
	if _, err := Render(testDataset(), Options{Format: "gif"}); err == nil {
		t.Errorf("Render(gif) = nil error, want error")
	}
}
