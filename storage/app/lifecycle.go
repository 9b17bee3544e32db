// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/benchgraph/benchgraph/storage"
)

var (
	// ErrUnsupportedMedia is returned when a request body is not JSON.
	ErrUnsupportedMedia = errors.New("only JSON is supported")
	// ErrBadMeasurement is returned by Update for JSON payloads that
	// are not a complete measurement.
	ErrBadMeasurement = errors.New("bad measurement")
	// ErrBusy is returned when a dataset stays locked by other
	// writers for longer than the lock timeout.
	ErrBusy = errors.New("dataset is busy")
)

// List returns the ids of all datasets in ascending order.
func (a *App) List(ctx context.Context) ([]string, error) {
	return a.Store.List(ctx)
}

// Get returns the stored document of dataset id.
func (a *App) Get(ctx context.Context, id string) ([]byte, error) {
	return a.Store.Raw(ctx, id)
}

// Create stores doc as the new dataset id. An empty doc creates an
// empty dataset.
func (a *App) Create(ctx context.Context, id string, doc []byte) error {
	if !storage.ValidID(id) {
		return storage.ErrInvalidID
	}
	d, err := dataset.Parse(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMedia, err)
	}
	unlock, err := a.locks.lock(ctx, id, a.lockTimeout())
	if err != nil {
		return err
	}
	defer unlock()
	return a.Store.Create(ctx, id, d)
}

// Update merges the measurement in payload into dataset id and
// returns the saved dataset. If the measurement's x is outside the
// dataset's domain, the dataset is left unchanged and the returned
// error is a *dataset.ValidationError.
func (a *App) Update(ctx context.Context, id string, payload []byte) (*dataset.Dataset, error) {
	ok, err := a.Store.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, storage.ErrNotFound
	}
	if !json.Valid(payload) {
		return nil, ErrUnsupportedMedia
	}
	m, err := dataset.ParseMeasurement(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMeasurement, err)
	}

	unlock, err := a.locks.lock(ctx, id, a.lockTimeout())
	if err != nil {
		return nil, err
	}
	defer unlock()

	d, err := a.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	p := m.Point()
	if err := dataset.Validate(d, p.X); err != nil {
		return nil, err
	}
	name := m.SeriesName()
	d = dataset.Upsert(d, name, p)
	if err := a.Store.Save(ctx, id, d); err != nil {
		return nil, err
	}
	a.record(ctx, id, name, p)
	return d, nil
}

// record tells the recorders about a saved point. The point is
// already durable, so recorder failures are only logged.
func (a *App) record(ctx context.Context, id, series string, p dataset.Point) {
	recorders := a.Recorders
	if a.DB != nil {
		recorders = append([]Recorder{a.DB}, recorders...)
	}
	for _, r := range recorders {
		if err := r.RecordPoint(ctx, id, series, p); err != nil {
			errorf(ctx, "record %s/%s: %v", id, series, err)
		}
	}
}

// Delete removes dataset id.
func (a *App) Delete(ctx context.Context, id string) error {
	ok, err := a.Store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrNotFound
	}
	unlock, err := a.locks.lock(ctx, id, a.lockTimeout())
	if err != nil {
		return err
	}
	defer unlock()
	return a.Store.Remove(ctx, id)
}
