// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Localserver runs an HTTP server for benchmark datasets.
//
// Usage:
//
//	localserver [flags]
//
// Datasets are stored as <id>.json files in -data_dir, or in the GCS
// bucket named by -gcs_bucket. If -dsn is set, every accepted update
// is also recorded in a SQL database and served on /history/. A dsn
// starting with "mysql:" selects MySQL; anything else is a sqlite3
// file name.
//
// The server listens on -addr, which defaults to the PORT environment
// variable or :1111. With -port_range lo-hi it listens on the first
// free port from lo up to but not including hi.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/benchgraph/benchgraph/storage"
	"github.com/benchgraph/benchgraph/storage/app"
	"github.com/benchgraph/benchgraph/storage/db"
	_ "github.com/benchgraph/benchgraph/storage/db/sqlite3"
	"github.com/benchgraph/benchgraph/storage/fs"
	"github.com/benchgraph/benchgraph/storage/fs/gcs"
	"github.com/benchgraph/benchgraph/storage/fs/local"
	"github.com/benchgraph/benchgraph/storage/influx"
	_ "github.com/go-sql-driver/mysql"
	"golang.org/x/net/netutil"
	"google.golang.org/api/option"
)

var (
	addr         = flag.String("addr", "", "serve HTTP on `address` (default :$PORT or :1111)")
	portRange    = flag.String("port_range", "", "serve HTTP on the first free port in `lo-hi`")
	dataDir      = flag.String("data_dir", "data", "store datasets in `directory`")
	gcsBucket    = flag.String("gcs_bucket", "", "store datasets in GCS `bucket` instead of -data_dir")
	gcsEndpoint  = flag.String("gcs_endpoint", "", "unauthenticated GCS API `URL`, for emulators")
	dsn          = flag.String("dsn", "", "record update history in `dsn`")
	lockTimeout  = flag.Duration("lock_timeout", app.DefaultLockTimeout, "wait at most `duration` for concurrent writes to a dataset")
	maxConns     = flag.Int("max_conns", 0, "serve at most `n` connections at once (0 is unlimited)")
	influxURL    = flag.String("influx_url", "", "mirror accepted points to the InfluxDB server at `URL`")
	influxToken  = flag.String("influx_token", "", "InfluxDB API `token`")
	influxOrg    = flag.String("influx_org", "", "InfluxDB `organization`")
	influxBucket = flag.String("influx_bucket", "benchgraph", "InfluxDB `bucket`")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: localserver [flags]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("localserver: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	ctx := context.Background()

	fsys, err := openFS(ctx)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	a := &app.App{
		Store:       &storage.Store{FS: fsys},
		LockTimeout: *lockTimeout,
	}

	if *dsn != "" {
		driver, source := "sqlite3", *dsn
		if strings.HasPrefix(*dsn, "mysql:") {
			driver, source = "mysql", strings.TrimPrefix(*dsn, "mysql:")
		}
		a.DB, err = db.OpenSQL(driver, source)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer a.DB.Close()
	}

	if *influxURL != "" {
		if *influxOrg == "" {
			log.Fatal("-influx_org is required with -influx_url")
		}
		w := influx.NewWriter(*influxURL, *influxToken, *influxOrg, *influxBucket)
		defer w.Close()
		a.Recorders = append(a.Recorders, w)
	}

	a.RegisterOnMux(http.DefaultServeMux)

	l, err := listen(listenAddr(), *portRange)
	if err != nil {
		log.Fatal(err)
	}
	if *maxConns > 0 {
		l = netutil.LimitListener(l, *maxConns)
	}

	log.Printf("Listening on http://%s/", l.Addr())

	log.Fatal(http.Serve(l, nil))
}

// openFS returns the dataset filesystem selected by the flags.
func openFS(ctx context.Context) (fs.FS, error) {
	if *gcsBucket == "" {
		return local.NewFS(*dataDir)
	}
	var opts []option.ClientOption
	if *gcsEndpoint != "" {
		opts = append(opts, option.WithEndpoint(*gcsEndpoint), option.WithoutAuthentication())
	}
	return gcs.NewFS(ctx, *gcsBucket, opts...)
}

// listenAddr returns the address from -addr, or else from $PORT.
func listenAddr() string {
	if *addr != "" {
		return *addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":1111"
}
