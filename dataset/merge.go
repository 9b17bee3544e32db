// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A ValidationError reports a point whose X is outside the domain
// declared by the dataset's xExpectedValues.
type ValidationError struct {
	Value   float64
	Allowed []float64
}

func (e *ValidationError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, v := range e.Allowed {
		allowed[i] = formatFloat(v)
	}
	return fmt.Sprintf("x value %s is not allowed; valid values: [%s]", formatFloat(e.Value), strings.Join(allowed, ","))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Validate reports whether x may be stored in d. It returns a
// *ValidationError if x is not one of d's expected values.
func Validate(d *Dataset, x float64) error {
	s, err := d.Settings()
	if err != nil {
		return err
	}
	for _, v := range s.XExpectedValues {
		if v == x {
			return nil
		}
	}
	return &ValidationError{Value: x, Allowed: s.XExpectedValues}
}

// Upsert returns a copy of d with p stored in the series named name.
// If the series does not exist it is appended. If it already holds a
// point with the same X, that point's Y is replaced; otherwise p is
// added. The series values are left sorted by ascending X.
//
// d itself is not modified. Series other than name are shared
// between d and the result.
func Upsert(d *Dataset, name string, p Point) *Dataset {
	out := &Dataset{
		GraphSettings: d.GraphSettings,
		GraphData:     make([]Series, len(d.GraphData), len(d.GraphData)+1),
	}
	copy(out.GraphData, d.GraphData)

	i := out.index(name)
	if i < 0 {
		out.GraphData = append(out.GraphData, Series{Name: name, Values: []Point{p}})
		return out
	}

	s := &out.GraphData[i]
	values := make([]Point, len(s.Values), len(s.Values)+1)
	copy(values, s.Values)
	found := false
	for j := range values {
		if values[j].X == p.X {
			values[j].Y = p.Y
			found = true
			break
		}
	}
	if !found {
		values = append(values, p)
	}
	sort.SliceStable(values, func(a, b int) bool { return values[a].X < values[b].X })
	s.Values = values
	return out
}
