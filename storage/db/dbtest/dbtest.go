// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dbtest opens history databases for tests.
package dbtest

import (
	"crypto/rand"
	"database/sql"
	"flag"
	"fmt"
	"testing"

	_ "github.com/GoogleCloudPlatform/cloudsql-proxy/proxy/dialers/mysql"
	"github.com/benchgraph/benchgraph/storage/db"
	_ "github.com/benchgraph/benchgraph/storage/db/sqlite3"
)

var (
	cloud    = flag.Bool("cloud", false, "connect to Cloud SQL database instead of in-memory SQLite")
	cloudsql = flag.String("cloudsql", "benchgraph:us-central1:benchgraph", "name of Cloud SQL `instance` to run tests on")
)

// NewDB returns an empty history database, in memory or, with
// -cloud, on Cloud SQL. It is closed when the test finishes.
func NewDB(t testing.TB) *db.DB {
	t.Helper()
	driverName, dataSourceName := "sqlite3", ":memory:"
	if *cloud {
		driverName, dataSourceName = "mysql", scratchCloudDB(t)
	}
	d, err := db.OpenSQL(driverName, dataSourceName)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	n, err := d.CountUpdates()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("new database has %d updates, want 0", n)
	}
	return d
}

// scratchCloudDB creates a database on the Cloud SQL instance that
// is dropped when the test finishes, and returns its dsn.
func scratchCloudDB(t testing.TB) string {
	var suffix [6]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		t.Fatal(err)
	}
	name := fmt.Sprintf("benchgraph_test_%x", suffix)
	server := fmt.Sprintf("root:@cloudsql(%s)/", *cloudsql)

	conn, err := sql.Open("mysql", server)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := conn.Exec("CREATE DATABASE `" + name + "`"); err != nil {
		conn.Close()
		t.Fatal(err)
	}
	t.Logf("using database %s", name)
	t.Cleanup(func() {
		if _, err := conn.Exec("DROP DATABASE `" + name + "`"); err != nil {
			t.Error(err)
		}
		conn.Close()
	})
	return server + name
}
