// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Command keyeditor is the installable entrypoint:
//
//	go install github.com/toeirei/keyeditor/cmd/keyeditor@latest
package main

import (
	"os"

	"github.com/toeirei/keyeditor/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}
