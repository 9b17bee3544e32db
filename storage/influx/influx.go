// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package influx mirrors accepted measurements into an InfluxDB v2
// bucket, so they can be graphed next to other time series.
package influx

import (
	"context"
	"time"

	"github.com/benchgraph/benchgraph/dataset"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// Measurement is the InfluxDB measurement name points are written to.
const Measurement = "benchgraph"

// A Writer writes points to InfluxDB.
type Writer struct {
	client influxdb2.Client
	api    api.WriteAPIBlocking
	now    func() time.Time
}

// NewWriter returns a Writer for the given server, authenticated with
// token, writing to bucket in org.
func NewWriter(serverURL, token, org, bucket string) *Writer {
	client := influxdb2.NewClient(serverURL, token)
	return &Writer{
		client: client,
		api:    client.WriteAPIBlocking(org, bucket),
		now:    time.Now,
	}
}

// RecordPoint writes p, tagged with its dataset and series.
func (w *Writer) RecordPoint(ctx context.Context, id, series string, p dataset.Point) error {
	pt := influxdb2.NewPoint(Measurement,
		map[string]string{"dataset": id, "series": series},
		map[string]interface{}{"x": p.X, "y": p.Y},
		w.now())
	return w.api.WritePoint(ctx, pt)
}

// Close releases the client's resources.
func (w *Writer) Close() {
	w.client.Close()
}
