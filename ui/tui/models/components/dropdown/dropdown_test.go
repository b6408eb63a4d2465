// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package dropdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/panel"
	"github.com/toeirei/keyeditor/core/render"
	"github.com/toeirei/keyeditor/ui/tui/models/components/popup"
)

func layouts(search bool) panel.Dropdown {
	return panel.Dropdown{
		Control: panel.SelectControl("keymap"),
		Section: "keymap",
		Title:   "keymap.select",
		Options: []model.OptionDescriptor{
			{Value: "qwerty", Label: "QWERTY"},
			{Value: "dvorak", Label: "Dvorak", AlternateName: "Simplified", Abbrev: "DVR", AbbrevImageRef: "dvr.png"},
			{Value: "colemak", Label: "Colemak"},
		},
		Selected: "dvorak",
		Config: render.DropdownConfig{
			SearchEnabled:   search,
			ResultFormatter: render.NewResultFormatter("images"),
		},
	}
}

// run executes cmd and flattens batches into their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func contains(msgs []tea.Msg, want tea.Msg) bool {
	for _, m := range msgs {
		if reflect.DeepEqual(m, want) {
			return true
		}
	}
	return false
}

func TestNew_PreselectsCurrentValue(t *testing.T) {
	m := New(layouts(true), 40, 14)
	if got := m.list.Index(); got != 1 {
		t.Fatalf("index = %d, want 1", got)
	}
	if m.Control() != "select:keymap" {
		t.Fatalf("control = %q", m.Control())
	}
}

func TestView_UsesFormatter(t *testing.T) {
	m := New(layouts(true), 40, 14)
	view := m.View()
	if !strings.Contains(view, "[DVR] Dvorak (Simplified)") {
		t.Fatalf("formatted option missing:\n%s", view)
	}
}

func TestEnter_SelectsAndCloses(t *testing.T) {
	m := New(layouts(true), 40, 14)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	msgs := run(m.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	want := SelectedMsg{Control: "select:keymap", Value: "colemak"}
	if !contains(msgs, want) {
		t.Fatalf("msgs %v lack %v", msgs, want)
	}
	if !contains(msgs, popup.Close()()) {
		t.Fatalf("msgs %v lack popup close", msgs)
	}
}

func TestEsc_Closes(t *testing.T) {
	m := New(layouts(true), 40, 14)
	msgs := run(m.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	if len(msgs) != 1 || !contains(msgs, popup.Close()()) {
		t.Fatalf("msgs = %v, want only popup close", msgs)
	}
}

func TestSearch_DisabledStaysUnfiltered(t *testing.T) {
	m := New(layouts(false), 40, 14)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if m.list.FilterState() != list.Unfiltered {
		t.Fatalf("filter state = %v, want unfiltered", m.list.FilterState())
	}
	_, km := m.Focus()
	if km.(KeyMap).Search.Enabled() {
		t.Fatal("search binding announced while search is disabled")
	}
}

func TestSearch_EnabledOpensFilter(t *testing.T) {
	m := New(layouts(true), 40, 14)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.Filtering() {
		t.Fatal("expected filter input to open")
	}
	// enter accepts the filter instead of choosing
	for _, msg := range run(m.Update(tea.KeyMsg{Type: tea.KeyEnter})) {
		if _, ok := msg.(SelectedMsg); ok {
			t.Fatal("enter while filtering must not choose")
		}
	}
}

func TestFuzzyFilter_MatchesAlternateName(t *testing.T) {
	targets := []string{
		New(layouts(true), 40, 14).list.Items()[0].FilterValue(),
		item{opt: model.OptionDescriptor{Value: "Return", Label: "Return", AlternateName: "Enter"}}.FilterValue(),
	}
	ranks := FuzzyFilter("enter", targets)
	if len(ranks) != 1 || ranks[0].Index != 1 {
		t.Fatalf("ranks = %+v, want the Return option only", ranks)
	}
}

func TestClosedCmd(t *testing.T) {
	msg := ClosedCmd("select:macro")(nil)()
	if msg != (ClosedMsg{Control: "select:macro"}) {
		t.Fatalf("msg = %v", msg)
	}
}
