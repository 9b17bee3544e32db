// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchpush sends benchmark measurements to a dataset server.
//
// Usage:
//
//	benchpush [-server url] [-token token] -x x -y y (-date date | -name series) dataset
//	benchpush [-server url] [-token token] -create file dataset
//	benchpush [-server url] [-token token] -delete dataset
//	benchpush [-server url] [-token token] -get dataset
//	benchpush [-server url] [-token token] -list
//
// By default benchpush merges one measurement into the dataset: the
// point (x, y) is stored in the series derived from -date, or in the
// series named by -name. The server rejects x values the dataset does
// not expect.
//
// With -create, benchpush creates the dataset from the JSON document
// in file, or an empty dataset if file is "-empty".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/benchgraph/benchgraph/dataset"
	"github.com/benchgraph/benchgraph/storage"
	"golang.org/x/oauth2"
)

var (
	server  = flag.String("server", "http://localhost:1111", "send requests to the server at `url`")
	token   = flag.String("token", "", "authenticate with the bearer `token`")
	verbose = flag.Bool("v", false, "print verbose log messages")

	xFlag = flag.String("x", "", "measurement `x` value")
	yFlag = flag.String("y", "", "measurement `y` value, in milliseconds")
	date  = flag.String("date", "", "run `date`, for example 2020-06-30; selects the series")
	name  = flag.String("name", "", "`series` name, instead of one derived from -date")

	create = flag.String("create", "", "create the dataset from `file`")
	del    = flag.Bool("delete", false, "delete the dataset")
	get    = flag.Bool("get", false, "print the dataset document")
	list   = flag.Bool("list", false, "list the datasets on the server")
)

// emptyDataset is the -create value for an empty dataset.
const emptyDataset = "-empty"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage of benchpush:
	benchpush [flags] -x x -y y (-date date | -name series) dataset
	benchpush [flags] (-create file | -delete | -get) dataset
	benchpush [flags] -list
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("benchpush: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	c := &storage.Client{BaseURL: *server}
	if *token != "" {
		c.HTTPClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: *token}))
	}

	start := time.Now()
	if err := run(ctx, c, os.Stdout, flag.Args()); err != nil {
		if err == errUsage {
			flag.Usage()
		}
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("done in %.2f seconds", time.Since(start).Seconds())
	}
}

var errUsage = errors.New("usage")

// run performs the operation selected by the flags.
func run(ctx context.Context, c *storage.Client, w io.Writer, args []string) error {
	if *list {
		if len(args) != 0 {
			return errUsage
		}
		ids, err := c.List(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(w, id)
		}
		return nil
	}

	if len(args) != 1 {
		return errUsage
	}
	id := args[0]

	switch {
	case *create != "":
		var d *dataset.Dataset
		if *create != emptyDataset {
			data, err := os.ReadFile(*create)
			if err != nil {
				return err
			}
			if d, err = dataset.Parse(data); err != nil {
				return fmt.Errorf("%s: %v", *create, err)
			}
		}
		return c.Create(ctx, id, d)

	case *del:
		return c.Delete(ctx, id)

	case *get:
		d, err := c.Get(ctx, id)
		if err != nil {
			return err
		}
		data, err := d.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	m, err := measurement()
	if err != nil {
		return err
	}
	if err := c.Update(ctx, id, m); err != nil {
		var serr *storage.StatusError
		if errors.As(err, &serr) && serr.Code == http.StatusNotAcceptable {
			return fmt.Errorf("%s rejected the measurement: %s", id, serr.Message)
		}
		return err
	}
	if *verbose {
		log.Printf("stored (%s, %s) in %s/%s", *xFlag, *yFlag, id, m.SeriesName())
	}
	return nil
}

// measurement builds the measurement described by the flags.
func measurement() (*dataset.Measurement, error) {
	if *xFlag == "" || *yFlag == "" || (*date == "" && *name == "") {
		return nil, errUsage
	}
	x, err := parseValue("-x", *xFlag)
	if err != nil {
		return nil, err
	}
	y, err := parseValue("-y", *yFlag)
	if err != nil {
		return nil, err
	}
	return &dataset.Measurement{Name: *name, Date: *date, X: &x, Y: &y}, nil
}

func parseValue(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("bad %s value %q", what, s)
	}
	return v, nil
}
