// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/benchgraph/benchgraph/storage"
	"github.com/benchgraph/benchgraph/storage/app"
	"github.com/benchgraph/benchgraph/storage/fs"
	"github.com/google/go-cmp/cmp"
)

// setFlags sets the named flags for the duration of the test.
func setFlags(t *testing.T, kv ...string) {
	t.Helper()
	for i := 0; i < len(kv); i += 2 {
		f := flag.Lookup(kv[i])
		old := f.Value.String()
		if err := flag.Set(kv[i], kv[i+1]); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { f.Value.Set(old) })
	}
}

func TestRun(t *testing.T) {
	mem := fs.NewMemFS()
	a := &app.App{Store: &storage.Store{FS: mem}}
	mux := http.NewServeMux()
	a.RegisterOnMux(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := &storage.Client{BaseURL: srv.URL}

	doc := filepath.Join(t.TempDir(), "perf.json")
	if err := os.WriteFile(doc, []byte(`{"graphSettings":{"xExpectedValues":[1,100,250]},"graphData":[]}`), 0666); err != nil {
		t.Fatal(err)
	}

	t.Run("create", func(t *testing.T) {
		setFlags(t, "create", doc)
		if err := run(ctx, c, nil, []string{"perf"}); err != nil {
			t.Fatal(err)
		}
	})
	t.Run("update", func(t *testing.T) {
		setFlags(t, "x", "100", "y", "900", "date", "2020-06-30")
		if err := run(ctx, c, nil, []string{"perf"}); err != nil {
			t.Fatal(err)
		}
	})
	t.Run("rejected", func(t *testing.T) {
		setFlags(t, "x", "999", "y", "1", "name", "run_a")
		err := run(ctx, c, nil, []string{"perf"})
		if err == nil || !strings.Contains(err.Error(), "valid values: [1,100,250]") {
			t.Fatalf("run = %v, want domain error", err)
		}
	})
	t.Run("get", func(t *testing.T) {
		setFlags(t, "get", "true")
		var buf bytes.Buffer
		if err := run(ctx, c, &buf, []string{"perf"}); err != nil {
			t.Fatal(err)
		}
		d, err := dataset.Parse(buf.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		want := []dataset.Series{{Name: "_2020_06_30", Values: []dataset.Point{{X: 100, Y: 900}}}}
		if diff := cmp.Diff(want, d.GraphData); diff != "" {
			t.Errorf("dataset: (-want +got)\n%s", diff)
		}
	})
	t.Run("list", func(t *testing.T) {
		setFlags(t, "create", emptyDataset)
		if err := run(ctx, c, nil, []string{"alpha"}); err != nil {
			t.Fatal(err)
		}
		setFlags(t, "create", "", "list", "true")
		var buf bytes.Buffer
		if err := run(ctx, c, &buf, nil); err != nil {
			t.Fatal(err)
		}
		if got, want := buf.String(), "alpha\nperf\n"; got != want {
			t.Errorf("list = %q, want %q", got, want)
		}
	})
	t.Run("delete", func(t *testing.T) {
		setFlags(t, "delete", "true")
		if err := run(ctx, c, nil, []string{"perf"}); err != nil {
			t.Fatal(err)
		}
		var serr *storage.StatusError
		if err := run(ctx, c, nil, []string{"perf"}); !errors.As(err, &serr) || serr.Code != http.StatusNotFound {
			t.Errorf("second delete = %v, want 404", err)
		}
	})

	if diff := cmp.Diff([]string{"alpha.json"}, mem.Files()); diff != "" {
		t.Errorf("files: (-want +got)\n%s", diff)
	}
}

func TestMeasurementUsage(t *testing.T) {
	for _, kv := range [][]string{
		{"x", "1"},
		{"x", "1", "y", "2"},
		{"y", "2", "date", "2020-06-30"},
	} {
		t.Run(strings.Join(kv, " "), func(t *testing.T) {
			setFlags(t, kv...)
			if _, err := measurement(); err != errUsage {
				t.Errorf("measurement() = %v, want errUsage", err)
			}
		})
	}
	setFlags(t, "x", "NaN", "y", "2", "name", "s")
	if _, err := measurement(); err == nil || err == errUsage {
		t.Errorf("measurement() with NaN x = %v, want value error", err)
	}
}
