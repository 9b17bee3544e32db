// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// parsePortRange parses a port range of the form "lo-hi". hi is
// excluded.
func parsePortRange(s string) (lo, hi int, err error) {
	los, his, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("bad port range %q: want lo-hi", s)
	}
	lo, err = strconv.Atoi(los)
	if err == nil {
		hi, err = strconv.Atoi(his)
	}
	if err != nil || lo <= 0 || hi > 65536 || lo >= hi {
		return 0, 0, fmt.Errorf("bad port range %q", s)
	}
	return lo, hi, nil
}

// listen listens on addr, or if ports is not empty, on the first
// port of that range that is free on addr's host.
func listen(addr, ports string) (net.Listener, error) {
	if ports == "" {
		return net.Listen("tcp", addr)
	}
	lo, hi, err := parsePortRange(ports)
	if err != nil {
		return nil, err
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	for port := lo; port < hi; port++ {
		l, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err == nil {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no free port in %s", ports)
}
