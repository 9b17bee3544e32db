// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local implements the fs.FS interface using a directory on
// local disk.
package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	perffs "github.com/benchgraph/benchgraph/storage/fs"
)

// FS is a filesystem rooted at a directory. Files are written to a
// temporary file in the same directory and renamed into place.
type FS struct {
	dir string
}

// NewFS constructs an FS that stores files in dir, creating it if
// necessary.
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	return &FS{dir: dir}, nil
}

// Dir returns the root directory of fs.
func (fsys *FS) Dir() string { return fsys.dir }

func (fsys *FS) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return filepath.Join(fsys.dir, name), nil
}

func (fsys *FS) List(_ context.Context, prefix string) ([]string, error) {
	entries, err := os.ReadDir(fsys.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (fsys *FS) ReadFile(_ context.Context, name string) ([]byte, error) {
	p, err := fsys.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, perffs.ErrNotExist
	}
	return data, err
}

func (fsys *FS) WriteFile(_ context.Context, name string, data []byte) (err error) {
	p, err := fsys.path(name)
	if err != nil {
		return err
	}
	// Temporary files start with a dot so List callers can skip them.
	f, err := os.CreateTemp(fsys.dir, "."+name+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Chmod(0666); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

func (fsys *FS) Remove(_ context.Context, name string) error {
	p, err := fsys.path(name)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return perffs.ErrNotExist
	}
	return err
}
