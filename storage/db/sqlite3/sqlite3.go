// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for storage/db. It
// must be imported instead of go-sqlite3 so that a DB opened on
// ":memory:" uses a single connection, and so a single database.
package sqlite3

import (
	"database/sql"

	"github.com/benchgraph/benchgraph/storage/db"
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	db.RegisterOpenHook("sqlite3", func(db *sql.DB) error {
		// Every connection to ":memory:" opens a separate database.
		db.SetMaxOpenConns(1)
		return nil
	})
}
