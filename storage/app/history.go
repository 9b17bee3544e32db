// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/benchgraph/benchgraph/storage"
	"github.com/benchgraph/benchgraph/storage/db"
)

// defaultHistoryLimit is the number of updates /history/ returns
// when no limit is given.
const defaultHistoryLimit = 100

// history is the handler for /history/{id}. It returns the most
// recent accepted updates to the dataset, newest first, as a JSON
// array. The "limit" parameter caps the number of updates.
func (a *App) history(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "/history/ must be called as a GET request", http.StatusMethodNotAllowed)
		return
	}
	if a.DB == nil {
		http.Error(w, "no history database configured", http.StatusNotFound)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/history/")
	if !storage.ValidID(id) {
		http.NotFound(w, r)
		return
	}

	limit := defaultHistoryLimit
	if s := r.FormValue("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit "+strconv.Quote(s), http.StatusBadRequest)
			return
		}
		limit = n
	}

	updates, err := a.DB.ListUpdates(ctx, id, limit)
	if err != nil {
		a.fail(ctx, w, r.Method, err)
		return
	}
	if updates == nil {
		updates = []*db.Update{}
	}
	w.Header().Set("Content-Type", "application/json")
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(updates); err != nil {
		errorf(ctx, "%v", err)
	}
}
