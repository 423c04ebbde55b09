// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command numerics evaluates robust complex arithmetic and renders Julia
// sets on the CPU or WebGPU backend.
package main

import (
	"os"

	"github.com/born-ml/numerics/cmd/numerics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
