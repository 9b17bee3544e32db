// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/benchgraph/benchgraph/dataset"
	. "github.com/benchgraph/benchgraph/storage/db"
	"github.com/benchgraph/benchgraph/storage/db/dbtest"
	"github.com/google/go-cmp/cmp"
)

// Most of the db package is tested via the end-to-end-tests in storage/app.

// TestListUpdates verifies that updates are returned newest first and
// scoped to their dataset.
func TestListUpdates(t *testing.T) {
	ctx := context.Background()

	db := dbtest.NewDB(t)

	SetNow(time.Unix(86400, 0))
	defer SetNow(time.Time{})

	for _, u := range []struct {
		id, series string
		p          dataset.Point
	}{
		{"perf", "run_a", dataset.Point{X: 1, Y: 500}},
		{"other", "run_a", dataset.Point{X: 1, Y: 1}},
		{"perf", "run_a", dataset.Point{X: 100, Y: 900}},
		{"perf", "run_b", dataset.Point{X: 250, Y: 12.5}},
	} {
		if err := db.RecordPoint(ctx, u.id, u.series, u.p); err != nil {
			t.Fatalf("RecordPoint: %v", err)
		}
	}

	n, err := db.CountUpdates()
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("CountUpdates = %d, want 4", n)
	}

	got, err := db.ListUpdates(ctx, "perf", 2)
	if err != nil {
		t.Fatalf("ListUpdates: %v", err)
	}
	ts := time.Unix(86400, 0).UTC()
	want := []*Update{
		{ID: 4, Dataset: "perf", Series: "run_b", X: 250, Y: 12.5, Time: ts},
		{ID: 3, Dataset: "perf", Series: "run_a", X: 100, Y: 900, Time: ts},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListUpdates: (-want +got)\n%s", diff)
	}

	got, err = db.ListUpdates(ctx, "ghost", 10)
	if err != nil {
		t.Fatalf("ListUpdates: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListUpdates(ghost) = %v, want none", got)
	}
}

func TestRecordTime(t *testing.T) {
	ctx := context.Background()

	db := dbtest.NewDB(t)

	when := time.Date(2020, 6, 30, 12, 0, 0, 0, time.UTC)
	if err := db.Record(ctx, &Update{Dataset: "perf", Series: "s", X: 1, Y: 2, Time: when}); err != nil {
		t.Fatal(err)
	}
	got, err := db.ListUpdates(ctx, "perf", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Time.Equal(when) {
		t.Errorf("ListUpdates = %+v, want one update at %v", got, when)
	}
}
