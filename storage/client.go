// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/benchgraph/benchgraph/dataset"
)

// A Client issues dataset requests to a storage server.
type Client struct {
	// BaseURL is the base URL of the storage server.
	BaseURL string
	// HTTPClient is the HTTP client for sending requests. If nil,
	// http.DefaultClient will be used.
	HTTPClient *http.Client
}

// httpClient returns the http.Client to use for requests.
func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// A StatusError is returned for server responses other than 200 or 202.
type StatusError struct {
	Code int
	// Message is the body of the response.
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, http.StatusText(e.Code), strings.TrimSpace(e.Message))
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(c.BaseURL, "/")+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, &StatusError{resp.StatusCode, string(data)}
	}
	return data, nil
}

func datasetPath(id string) string {
	return "/data/" + url.PathEscape(id)
}

// List returns the ids of the datasets on the server.
func (c *Client) List(ctx context.Context) ([]string, error) {
	data, err := c.do(ctx, http.MethodGet, "/data", nil)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Get fetches the dataset id.
func (c *Client) Get(ctx context.Context, id string) (*dataset.Dataset, error) {
	data, err := c.do(ctx, http.MethodGet, datasetPath(id)+Ext, nil)
	if err != nil {
		return nil, err
	}
	return dataset.Parse(data)
}

// Create creates the dataset id with the given initial document.
// A nil d creates an empty dataset.
func (c *Client) Create(ctx context.Context, id string, d *dataset.Dataset) error {
	if d == nil {
		d = dataset.New()
	}
	body, err := json.Marshal(d)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, datasetPath(id), body)
	return err
}

// Update submits a measurement to the dataset id.
func (c *Client) Update(ctx context.Context, id string, m *dataset.Measurement) error {
	body, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, datasetPath(id), body)
	return err
}

// Delete removes the dataset id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, datasetPath(id), nil)
	return err
}
