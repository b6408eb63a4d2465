// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestHandler_TracksCurrentTitle(t *testing.T) {
	h := NewHandler("Keyeditor v1", " | ")

	if cmd := h.Handle(Set("Mouse")()); cmd == nil {
		t.Fatal("expected a title command for a new title")
	}
	if h.current != "Mouse" {
		t.Fatalf("current = %q", h.current)
	}
	if cmd := h.Handle(Set("Mouse")()); cmd != nil {
		t.Fatal("unchanged title must not emit a command")
	}
	if cmd := h.Handle("unrelated"); cmd != nil {
		t.Fatal("foreign message handled")
	}
}
