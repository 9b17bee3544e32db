// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/benchgraph/benchgraph/storage"
)

// maxBodySize limits the size of uploaded documents.
const maxBodySize = 8 << 20

// list is the handler for the /data endpoint. It returns the
// dataset ids as a JSON array.
func (a *App) list(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "/data must be called as a GET request", http.StatusMethodNotAllowed)
		return
	}
	ids, err := a.List(ctx)
	if err != nil {
		a.fail(ctx, w, r.Method, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ids); err != nil {
		errorf(ctx, "%v", err)
	}
}

// data is the handler for /data/{id}. GET returns the dataset
// document, POST creates the dataset, PUT merges a measurement into
// it and DELETE removes it.
func (a *App) data(w http.ResponseWriter, r *http.Request) {
	ctx := requestContext(r)

	id := strings.TrimPrefix(r.URL.Path, "/data/")
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		id = strings.TrimSuffix(id, storage.Ext)
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		doc, err := a.Get(ctx, id)
		if err != nil {
			a.fail(ctx, w, r.Method, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(doc)

	case http.MethodPost:
		body, err := readJSON(r)
		if err == nil {
			err = a.Create(ctx, id, body)
		}
		if err != nil {
			a.fail(ctx, w, r.Method, err)
			return
		}
		infof(ctx, "created dataset %s", id)
		fmt.Fprintf(w, "%s created\n", id)

	case http.MethodPut:
		body, err := readJSON(r)
		if err != nil {
			// An unknown id takes precedence over a bad body.
			if ok, lerr := a.Store.Exists(ctx, id); lerr == nil && !ok {
				err = storage.ErrNotFound
			}
			a.fail(ctx, w, r.Method, err)
			return
		}
		if _, err := a.Update(ctx, id, body); err != nil {
			a.fail(ctx, w, r.Method, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, "%s upload success\n", id)

	case http.MethodDelete:
		if err := a.Delete(ctx, id); err != nil {
			a.fail(ctx, w, r.Method, err)
			return
		}
		infof(ctx, "deleted dataset %s", id)
		fmt.Fprintf(w, "%s deleted\n", id)

	default:
		http.Error(w, "unsupported method "+r.Method, http.StatusMethodNotAllowed)
	}
}

// readJSON returns the body of r, which must be declared as JSON.
func readJSON(r *http.Request) ([]byte, error) {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		return nil, ErrUnsupportedMedia
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// httpStatus maps an error from the App to an HTTP status code.
// method is the request method, since an unknown dataset is reported
// as 406 to writers that expect it to exist and 404 otherwise.
func httpStatus(method string, err error) int {
	var verr *dataset.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		if method == http.MethodPut {
			return http.StatusNotAcceptable
		}
		return http.StatusNotFound
	case errors.Is(err, storage.ErrInvalidID):
		if method == http.MethodPost {
			return http.StatusNotAcceptable
		}
		return http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists),
		errors.Is(err, ErrUnsupportedMedia),
		errors.Is(err, ErrBadMeasurement),
		errors.As(err, &verr):
		return http.StatusNotAcceptable
	case errors.Is(err, ErrBusy):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// fail reports err to the client with the status from httpStatus.
// Server-side failures are logged.
func (a *App) fail(ctx context.Context, w http.ResponseWriter, method string, err error) {
	code := httpStatus(method, err)
	if code >= 500 {
		errorf(ctx, "%v", err)
	}
	http.Error(w, errorMessage(err), code)
}

func errorMessage(err error) string {
	if errors.Is(err, ErrUnsupportedMedia) {
		return "Only JSON is supported!"
	}
	return err.Error()
}
