// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"io"
	"net/http"
	"strings"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/benchgraph/benchgraph/dataset"
)

// summaryCols are the columns of the summary table, in order.
var summaryCols = []string{"series", "points", "min y", "max y", "mean y", "geomean y"}

// summarize computes per-series statistics of the y values in d.
// It returns nil if d holds no points.
func summarize(d *dataset.Dataset) *table.Table {
	var names []string
	var ys []float64
	for _, s := range d.GraphData {
		for _, v := range s.Values {
			names = append(names, s.Name)
			ys = append(ys, v.Y)
		}
	}
	if len(ys) == 0 {
		return nil
	}
	var b table.Builder
	b.Add("series", names).Add("y", ys)

	agg := ggstat.Agg("series")(
		ggstat.AggCount("points"),
		ggstat.AggMin("y"),
		ggstat.AggMax("y"),
		ggstat.AggMean("y"),
		ggstat.AggGeoMean("y"),
	)
	t := table.Flatten(agg.F(b.Done()))

	// Aggregate keeps y when it happens to be constant in every
	// group; drop it so the shape does not depend on the data.
	var out table.Builder
	for _, col := range summaryCols {
		out.Add(col, t.MustColumn(col))
	}
	return out.Done()
}

// writeSummary prints the summary of d to w as a text table.
func writeSummary(w io.Writer, d *dataset.Dataset) error {
	t := summarize(d)
	if t == nil {
		_, err := io.WriteString(w, "no measurements\n")
		return err
	}
	return table.Fprint(w, t, "%s", "%d", "%.2f", "%.2f", "%.2f", "%.2f")
}

// summary is the handler for /summary/{id}.
func (a *App) summary(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "/summary/ must be called as a GET request", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/summary/")
	d, err := a.Store.Load(ctx, id)
	if err != nil {
		a.fail(ctx, w, r.Method, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := writeSummary(w, d); err != nil {
		errorf(ctx, "%v", err)
	}
}
