// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import "testing"

func TestT_English(t *testing.T) {
	Init("en")
	if got := T("tab.keypress"); got != "Keypress" {
		t.Fatalf("got %q", got)
	}
}

func TestT_German(t *testing.T) {
	Init("de")
	defer Init("en")
	if got := T("tab.macro"); got != "Makro" {
		t.Fatalf("got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	if got := T("tab.none"); got != "None" {
		t.Fatalf("got %q", got)
	}
}

func TestT_MissingMessageReturnsID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("got %q", got)
	}
}

func TestTf_TemplateData(t *testing.T) {
	Init("en")
	got := Tf("status.error", map[string]any{"Error": "boom"})
	if got != "Error: boom" {
		t.Fatalf("got %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "de" || langs[1] != "en" {
		t.Fatalf("unexpected languages %v", langs)
	}
}
