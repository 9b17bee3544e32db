// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage gives access to persisted benchmark datasets, either
// directly through a Store or over HTTP through a Client.
package storage

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/benchgraph/benchgraph/storage/fs"
	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a dataset does not exist.
	ErrNotFound = errors.New("dataset not found")
	// ErrAlreadyExists is returned by Create when a dataset exists.
	ErrAlreadyExists = errors.New("dataset already exists")
	// ErrInvalidID is returned for ids that are not safe file names.
	ErrInvalidID = errors.New("invalid dataset id")
)

// Ext is the suffix of stored dataset documents.
const Ext = ".json"

var idRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidID reports whether id can name a dataset.
func ValidID(id string) bool {
	return len(id) <= 128 && idRE.MatchString(id) && !strings.Contains(id, "..") && !strings.HasSuffix(id, Ext)
}

// A Store reads and writes whole dataset documents, one file per
// dataset, named <id>.json.
//
// Store does not serialize writers; callers that read, modify and
// write a dataset must hold a lock for that dataset id.
type Store struct {
	FS fs.FS
}

// List returns the ids of all stored datasets in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.FS.List(ctx, "")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list datasets")
	}
	ids := []string{}
	for _, name := range names {
		id := strings.TrimSuffix(name, Ext)
		if id == name || !ValidID(id) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Exists reports whether the dataset id is stored.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	i := sort.SearchStrings(ids, id)
	return i < len(ids) && ids[i] == id, nil
}

// Raw returns the stored document for id.
func (s *Store) Raw(ctx context.Context, id string) ([]byte, error) {
	if !ValidID(id) {
		return nil, ErrNotFound
	}
	data, err := s.FS.ReadFile(ctx, id+Ext)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read dataset %s", id)
	}
	return data, nil
}

// Load reads and decodes the dataset id.
func (s *Store) Load(ctx context.Context, id string) (*dataset.Dataset, error) {
	data, err := s.Raw(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := dataset.Parse(data)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "decode dataset %s", id)
	}
	return d, nil
}

// Save replaces the stored document for id with d.
func (s *Store) Save(ctx context.Context, id string, d *dataset.Dataset) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	data, err := d.Marshal()
	if err != nil {
		return pkgerrors.Wrapf(err, "encode dataset %s", id)
	}
	if err := s.FS.WriteFile(ctx, id+Ext, data); err != nil {
		return pkgerrors.Wrapf(err, "write dataset %s", id)
	}
	return nil
}

// Create stores d as a new dataset id. It fails with ErrAlreadyExists
// if id is already stored.
func (s *Store) Create(ctx context.Context, id string, d *dataset.Dataset) error {
	if !ValidID(id) {
		return ErrInvalidID
	}
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		return ErrAlreadyExists
	}
	return s.Save(ctx, id, d)
}

// Remove deletes the dataset id. It fails with ErrNotFound if id is
// not stored.
func (s *Store) Remove(ctx context.Context, id string) error {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	err = s.FS.Remove(ctx, id+Ext)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return pkgerrors.Wrapf(err, "remove dataset %s", id)
	}
	return nil
}
