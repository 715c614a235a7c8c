// Swatch - a chart colour palette resolver
//
// Swatch turns colour descriptors - ramp names, Brewer palette names,
// remote palette identifiers, explicit colour lists or images - into
// fixed-size colour sequences for charts.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
