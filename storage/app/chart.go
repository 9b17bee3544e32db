// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/benchgraph/benchgraph/chart"
)

var chartTypes = map[string]string{
	".png": "image/png",
	".svg": "image/svg+xml",
}

// chart is the handler for /chart/{id}.png and /chart/{id}.svg.
// The optional "series" parameter sets the number of series drawn;
// a negative value draws all of them.
func (a *App) chart(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "/chart/ must be called as a GET request", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/chart/")
	ext := path.Ext(name)
	contentType, ok := chartTypes[ext]
	if !ok {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimSuffix(name, ext)

	opts := chart.Options{Format: ext[1:]}
	if s := r.FormValue("series"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n == 0 {
			http.Error(w, "invalid series count "+strconv.Quote(s), http.StatusBadRequest)
			return
		}
		opts.MaxSeries = n
	}

	d, err := a.Store.Load(ctx, id)
	if err != nil {
		a.fail(ctx, w, r.Method, err)
		return
	}
	img, err := chart.Render(d, opts)
	if err != nil {
		a.fail(ctx, w, r.Method, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(img)
}
