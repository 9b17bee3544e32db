// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app implements the benchmark dataset server. Combine an App
// with a dataset store to get an HTTP server.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/benchgraph/benchgraph/storage"
	"github.com/benchgraph/benchgraph/storage/db"
)

// DefaultLockTimeout is the default for App.LockTimeout.
const DefaultLockTimeout = 5 * time.Second

// App manages the dataset server logic. Construct an App instance
// using a literal with a Store and call RegisterOnMux to connect it
// with an HTTP server.
type App struct {
	Store *storage.Store

	// DB, if not nil, records the history of accepted updates and
	// serves it on /history/.
	DB *db.DB

	// Recorders are told about every accepted update after it has
	// been saved. DB is always notified and need not be listed.
	Recorders []Recorder

	// LockTimeout bounds how long a write waits for another write
	// to the same dataset. Zero means DefaultLockTimeout.
	LockTimeout time.Duration

	locks keyLocks
}

// A Recorder is notified of each point stored in a dataset.
type Recorder interface {
	RecordPoint(ctx context.Context, id, series string, p dataset.Point) error
}

// RegisterOnMux registers the app's URLs on mux.
func (a *App) RegisterOnMux(mux *http.ServeMux) {
	mux.HandleFunc("/", a.index)
	mux.HandleFunc("/data", a.list)
	mux.HandleFunc("/data/", a.data)
	mux.HandleFunc("/chart/", a.chart)
	mux.HandleFunc("/summary/", a.summary)
	mux.HandleFunc("/history/", a.history)
}

func (a *App) lockTimeout() time.Duration {
	if a.LockTimeout > 0 {
		return a.LockTimeout
	}
	return DefaultLockTimeout
}
