// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Keyeditor.
//
// Usage:
//
//	go run . [flags]
//	./keyeditor [flags]
//
// This launches the Keyeditor CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/keyeditor/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
