// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark datasets</title>
<style>
body { font-family: sans-serif; }
#menu span { margin-right: 1em; }
table { border-collapse: collapse; margin-top: 1em; }
td, th { padding: 0.2em 0.8em; text-align: right; }
td.series { text-align: left; }
</style>
</head>
<body>
<div id="menu">
{{range .Datasets}}<span>{{if .Selected}}<b>{{.ID}}</b>{{else}}<a href="{{.URL}}">{{.ID}}</a>{{end}}</span>
{{else}}No datasets.
{{end}}</div>
{{with .Current}}
<h2>{{.ID}}</h2>
<img src="{{.Chart}}" alt="{{.ID}}">
<table id="data">
<tr><th>{{.XLegend}}</th>{{range .Xs}}<th>{{.}}</th>{{end}}</tr>
<tr><th>Series</th><th colspan="{{len .Xs}}">Duration [h:m:s.ms]</th></tr>
{{range .Rows}}<tr><td class="series">{{.Name}}</td>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{end}}
</body>
</html>
`))

type indexPage struct {
	Datasets []indexLink
	Current  *indexView
}

type indexLink struct {
	ID       string
	URL      safehtml.URL
	Selected bool
}

type indexView struct {
	ID      string
	Chart   safehtml.URL
	XLegend string
	Xs      []string
	Rows    []indexRow
}

type indexRow struct {
	Name  string
	Cells []string
}

// index is the handler for /. It shows a menu of the datasets, and
// the chart and table of the one selected by the "id" parameter or
// else the first one.
func (a *App) index(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "/ must be called as a GET request", http.StatusMethodNotAllowed)
		return
	}

	ids, err := a.List(ctx)
	if err != nil {
		a.fail(ctx, w, r.Method, err)
		return
	}
	selected := r.FormValue("id")
	if i := sort.SearchStrings(ids, selected); i == len(ids) || ids[i] != selected {
		selected = ""
		if len(ids) > 0 {
			selected = ids[0]
		}
	}

	var page indexPage
	for _, id := range ids {
		page.Datasets = append(page.Datasets, indexLink{
			ID:       id,
			URL:      safehtml.URLSanitized("/?id=" + url.QueryEscape(id)),
			Selected: id == selected,
		})
	}
	if selected != "" {
		d, err := a.Store.Load(ctx, selected)
		if err != nil {
			a.fail(ctx, w, r.Method, err)
			return
		}
		page.Current, err = newIndexView(selected, d)
		if err != nil {
			a.fail(ctx, w, r.Method, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, page); err != nil {
		errorf(ctx, "%v", err)
	}
}

// newIndexView lays out d as a table with one column per x value
// and one row per series.
func newIndexView(id string, d *dataset.Dataset) (*indexView, error) {
	settings, err := d.Settings()
	if err != nil {
		return nil, err
	}
	v := &indexView{
		ID:      id,
		Chart:   safehtml.URLSanitized("/chart/" + url.PathEscape(id) + ".svg"),
		XLegend: settings.Legend.X,
	}

	seen := make(map[float64]bool)
	var xs []float64
	for _, s := range d.GraphData {
		for _, p := range s.Values {
			if !seen[p.X] {
				seen[p.X] = true
				xs = append(xs, p.X)
			}
		}
	}
	sort.Float64s(xs)
	col := make(map[float64]int, len(xs))
	for i, x := range xs {
		col[x] = i
		v.Xs = append(v.Xs, strconv.FormatFloat(x, 'f', -1, 64))
	}

	for _, s := range d.GraphData {
		row := indexRow{
			Name:  strings.TrimPrefix(s.Name, "_"),
			Cells: make([]string, len(xs)),
		}
		for _, p := range s.Values {
			row.Cells[col[p.X]] = formatDuration(p.Y)
		}
		v.Rows = append(v.Rows, row)
	}
	return v, nil
}

// formatDuration formats a duration in milliseconds as h:m:s.ms.
func formatDuration(ms float64) string {
	n := int64(math.Round(ms))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	return fmt.Sprintf("%s%d:%d:%d.%03d", sign, n/3600000, n/60000%60, n/1000%60, n%1000)
}
