// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fstest checks implementations of fs.FS.
package fstest

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/benchgraph/benchgraph/storage/fs"
	"github.com/google/go-cmp/cmp"
)

// TestFS runs the fs.FS contract checks against an empty fsys.
func TestFS(t *testing.T, fsys fs.FS) {
	ctx := context.Background()

	if _, err := fsys.ReadFile(ctx, "a.json"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) = %v, want fs.ErrNotExist", err)
	}
	if err := fsys.Remove(ctx, "a.json"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Remove(missing) = %v, want fs.ErrNotExist", err)
	}

	for _, f := range []struct{ name, data string }{
		{"a.json", "one"},
		{"b.json", "two"},
		{"other.txt", "three"},
		{"a.json", "replaced"},
	} {
		if err := fsys.WriteFile(ctx, f.name, []byte(f.data)); err != nil {
			t.Fatalf("WriteFile(%s): %v", f.name, err)
		}
	}

	data, err := fsys.ReadFile(ctx, "a.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "replaced" {
		t.Errorf("ReadFile = %q, want %q", data, "replaced")
	}

	names, err := fsys.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	sort.Strings(names)
	if diff := cmp.Diff([]string{"a.json", "b.json", "other.txt"}, names); diff != "" {
		t.Errorf("List: (-want +got)\n%s", diff)
	}
	names, err = fsys.List(ctx, "b")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"b.json"}, names); diff != "" {
		t.Errorf("List(b): (-want +got)\n%s", diff)
	}

	if err := fsys.Remove(ctx, "b.json"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := fsys.ReadFile(ctx, "b.json"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile after Remove = %v, want fs.ErrNotExist", err)
	}
}
