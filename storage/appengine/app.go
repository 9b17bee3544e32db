// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package appengine contains an AppEngine app serving benchmark
// datasets from Cloud Storage, with update history in Cloud SQL.
package appengine

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/benchgraph/benchgraph/storage"
	"github.com/benchgraph/benchgraph/storage/app"
	"github.com/benchgraph/benchgraph/storage/db"
	"github.com/benchgraph/benchgraph/storage/fs/gcs"
	_ "github.com/go-sql-driver/mysql"
	"google.golang.org/appengine"
	aelog "google.golang.org/appengine/log"
)

// connectDB returns a DB initialized from the environment variables set in app.yaml. CLOUDSQL_CONNECTION_NAME, CLOUDSQL_USER, and CLOUDSQL_DATABASE must be set to point to the Cloud SQL instance. CLOUDSQL_PASSWORD can be set if needed.
func connectDB() (*db.DB, error) {
	var (
		connectionName = mustGetenv("CLOUDSQL_CONNECTION_NAME")
		user           = mustGetenv("CLOUDSQL_USER")
		password       = os.Getenv("CLOUDSQL_PASSWORD") // NOTE: password may be empty
		dbName         = mustGetenv("CLOUDSQL_DATABASE")
	)

	return db.OpenSQL("mysql", fmt.Sprintf("%s:%s@cloudsql(%s)/%s", user, password, connectionName, dbName))
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Panicf("%s environment variable not set.", k)
	}
	return v
}

var (
	initOnce sync.Once
	mux      *http.ServeMux
	initErr  error
)

// newMux builds the App and its mux. GCS clients need to be
// constructed with an AppEngine context, so this waits for the
// first request. The App is shared by all requests so that writes to
// a dataset are serialized across them.
func newMux(r *http.Request) (*http.ServeMux, error) {
	ctx := appengine.NewContext(r)

	fsys, err := gcs.NewFS(ctx, mustGetenv("GCS_BUCKET"))
	if err != nil {
		return nil, fmt.Errorf("gcs.NewFS: %v", err)
	}
	a := &app.App{Store: &storage.Store{FS: fsys}}
	if os.Getenv("CLOUDSQL_CONNECTION_NAME") != "" {
		a.DB, err = connectDB()
		if err != nil {
			return nil, fmt.Errorf("connectDB: %v", err)
		}
	}
	m := http.NewServeMux()
	a.RegisterOnMux(m)
	return m, nil
}

// appHandler is the default handler, registered to serve "/". The
// environment variable GCS_BUCKET must be set in app.yaml with the
// name of the bucket holding the datasets.
func appHandler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		mux, initErr = newMux(r)
	})
	if initErr != nil {
		aelog.Errorf(appengine.NewContext(r), "%v", initErr)
		http.Error(w, initErr.Error(), 500)
		return
	}
	mux.ServeHTTP(w, r)
}

func init() {
	http.HandleFunc("/", appHandler)
}
