// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db keeps a history of the measurements accepted by the
// storage app in a SQL database.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/benchgraph/benchgraph/dataset"
)

// DB is a high-level interface to a database for the storage
// app. It's safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertUpdate *sql.Stmt
	listUpdates  *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Updates (
	UpdateID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Dataset VARCHAR(128) NOT NULL,
	Series VARCHAR(255) NOT NULL,
	X DOUBLE NOT NULL,
	Y DOUBLE NOT NULL,
	Time BIGINT NOT NULL
{{if not .sqlite3}}
	, INDEX (Dataset, UpdateID)
{{end}}
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS UpdatesDataset ON Updates(Dataset, UpdateID);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertUpdate, err = db.sql.Prepare("INSERT INTO Updates(Dataset, Series, X, Y, Time) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	db.listUpdates, err = db.sql.Prepare("SELECT UpdateID, Dataset, Series, X, Y, Time FROM Updates WHERE Dataset = ? ORDER BY UpdateID DESC LIMIT ?")
	if err != nil {
		return err
	}
	return nil
}

// now is a hook for testing
var now = time.Now

// An Update is one accepted measurement.
type Update struct {
	ID      int64     `json:"id"`
	Dataset string    `json:"dataset"`
	Series  string    `json:"series"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	Time    time.Time `json:"time"`
}

// Record appends u to the history. u.ID is ignored and u.Time is set
// to the current time if it is zero.
func (db *DB) Record(ctx context.Context, u *Update) error {
	t := u.Time
	if t.IsZero() {
		t = now()
	}
	_, err := db.insertUpdate.ExecContext(ctx, u.Dataset, u.Series, u.X, u.Y, t.UnixNano())
	return err
}

// RecordPoint records that p was stored in series of dataset id.
func (db *DB) RecordPoint(ctx context.Context, id, series string, p dataset.Point) error {
	return db.Record(ctx, &Update{Dataset: id, Series: series, X: p.X, Y: p.Y})
}

// ListUpdates returns the most recent updates to dataset id, newest
// first. At most limit updates are returned.
func (db *DB) ListUpdates(ctx context.Context, id string, limit int) ([]*Update, error) {
	rows, err := db.listUpdates.QueryContext(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var updates []*Update
	for rows.Next() {
		u := new(Update)
		var t int64
		if err := rows.Scan(&u.ID, &u.Dataset, &u.Series, &u.X, &u.Y, &t); err != nil {
			return nil, err
		}
		u.Time = time.Unix(0, t).UTC()
		updates = append(updates, u)
	}
	return updates, rows.Err()
}

// CountUpdates returns the number of updates stored in the database.
func (db *DB) CountUpdates() (int, error) {
	var count int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Updates").Scan(&count)
	return count, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertUpdate, db.listUpdates} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
