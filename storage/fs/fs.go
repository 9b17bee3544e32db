// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fs provides a backend-agnostic filesystem layer for storing
// dataset documents.
package fs

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrNotExist is returned by ReadFile and Remove when the named file
// does not exist.
var ErrNotExist = errors.New("file does not exist")

// An FS stores whole files by name. Implementations must be safe for
// concurrent use, and WriteFile must replace the file atomically:
// readers observe either the previous or the new content, never a
// partial write.
type FS interface {
	// List returns the names of all files whose name starts with
	// prefix, in no particular order.
	List(ctx context.Context, prefix string) ([]string, error)
	// ReadFile returns the content of the named file.
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// WriteFile creates or replaces the named file.
	WriteFile(ctx context.Context, name string, data []byte) error
	// Remove deletes the named file.
	Remove(ctx context.Context, name string) error
}

// MemFS is an in-memory filesystem implementing the FS interface.
type MemFS struct {
	mu      sync.Mutex
	content map[string][]byte
}

// NewMemFS constructs a new, empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		content: make(map[string][]byte),
	}
}

func (fs *MemFS) List(_ context.Context, prefix string) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var names []string
	for name := range fs.content {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (fs *MemFS) ReadFile(_ context.Context, name string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, ok := fs.content[name]
	if !ok {
		return nil, ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (fs *MemFS) WriteFile(_ context.Context, name string, data []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.content[name] = append([]byte(nil), data...)
	return nil
}

func (fs *MemFS) Remove(_ context.Context, name string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.content[name]; !ok {
		return ErrNotExist
	}
	delete(fs.content, name)
	return nil
}

// Files returns the sorted names of the files written to fs.
func (fs *MemFS) Files() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var files []string
	for f := range fs.content {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
