// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer swaps L with a buffer-backed logger and
// checks every helper reaches it.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("tab %s", "macro")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"tab macro", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %s", want, out)
		}
	}
}

func TestSetup_Level(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var buf bytes.Buffer
	if err := Setup("error", &buf); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	Infof("hidden")
	Errorf("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at error level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("missing error output: %s", out)
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	if err := Setup("loud", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
