// Accent - distinct accent colour selection
//
// Accent picks new accent colours guaranteed not to collide, visually or in
// contrast, with an existing colour palette.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/accent/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
