// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/benchgraph/benchgraph/storage/fs"
	"github.com/google/go-cmp/cmp"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	mem := fs.NewMemFS()
	s := &Store{FS: mem}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Errorf("List on empty store = %v, want []", ids)
	}

	for _, id := range []string{"perf", "alpha", "v1.2"} {
		if err := s.Create(ctx, id, dataset.New()); err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
	}
	// Stray files are not datasets.
	mem.WriteFile(ctx, ".perf.json.tmp123", nil)
	mem.WriteFile(ctx, "notes.txt", nil)

	if err := s.Create(ctx, "perf", dataset.New()); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Create(perf) again = %v, want ErrAlreadyExists", err)
	}

	ids, err = s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"alpha", "perf", "v1.2"}, ids); diff != "" {
		t.Errorf("List: (-want +got)\n%s", diff)
	}
	again, _ := s.List(ctx)
	if diff := cmp.Diff(ids, again); diff != "" {
		t.Errorf("List is not deterministic: (-first +second)\n%s", diff)
	}

	d := dataset.New()
	d.GraphSettings = json.RawMessage(`{"xExpectedValues":[1]}`)
	d = dataset.Upsert(d, "run", dataset.Point{X: 1, Y: 2})
	if err := s.Save(ctx, "perf", d); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(ctx, "perf")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d.GraphData, got.GraphData); diff != "" {
		t.Errorf("Load after Save: (-want +got)\n%s", diff)
	}
	if settings, err := got.Settings(); err != nil || len(settings.XExpectedValues) != 1 {
		t.Errorf("Load after Save: Settings() = %+v, %v, want xExpectedValues [1]", settings, err)
	}

	if err := s.Remove(ctx, "perf"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(ghost) = %v, want ErrNotFound", err)
	}
	if _, err := s.Load(ctx, "perf"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(removed) = %v, want ErrNotFound", err)
	}
}

func TestStoreCorrupt(t *testing.T) {
	ctx := context.Background()
	mem := fs.NewMemFS()
	mem.WriteFile(ctx, "bad.json", []byte("{not json"))
	s := &Store{FS: mem}
	_, err := s.Load(ctx, "bad")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Load(corrupt) = %v, want decode error", err)
	}
}

func TestValidID(t *testing.T) {
	for _, test := range []struct {
		id string
		ok bool
	}{
		{"perf", true},
		{"perf_2020-06", true},
		{"v1.2", true},
		{"", false},
		{".hidden", false},
		{"../etc", false},
		{"a/b", false},
		{"a..b", false},
		{"x.json", false},
		{"has space", false},
	} {
		if got := ValidID(test.id); got != test.ok {
			t.Errorf("ValidID(%q) = %v, want %v", test.id, got, test.ok)
		}
	}
}
