// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyeditor/ui/tui/util"
)

type fakeKeyMap struct{ b key.Binding }

func (k fakeKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.b} }
func (k fakeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.b}} }

type fake struct {
	name string
	keys int
	size tea.WindowSizeMsg
}

func (f *fake) Init() tea.Cmd { return nil }
func (f *fake) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		f.keys++
	case tea.WindowSizeMsg:
		f.size = msg
	}
	return nil
}
func (f *fake) View() string { return f.name }
func (f *fake) Focus() (tea.Cmd, help.KeyMap) {
	return nil, fakeKeyMap{key.NewBinding(key.WithKeys(f.name))}
}
func (f *fake) Blur() {}

func TestStack_SizesAndFilters(t *testing.T) {
	top, body := &fake{name: "top"}, &fake{name: "body"}
	s := New(
		WithOrientation(Vertical),
		WithFocus(FocusIndex(1)),
		WithItem(util.ModelPointer(top), StaticSize(2), DropKeys),
		WithItem(util.ModelPointer(body), VariableSize(1)),
	)

	s.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if top.size.Height != 2 || body.size.Height != 8 || body.size.Width != 30 {
		t.Fatalf("sizes: top %+v body %+v", top.size, body.size)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if top.keys != 0 {
		t.Fatalf("filtered item received %d keys", top.keys)
	}
	if body.keys != 1 {
		t.Fatalf("body received %d keys, want 1", body.keys)
	}
}

func TestStack_FocusAnnouncesFocusedKeyMap(t *testing.T) {
	a, b := &fake{name: "a"}, &fake{name: "b"}
	s := New(
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(1)),
		WithFocus(FocusIndex(1)),
	)

	_, km := s.Focus()
	if keys := km.ShortHelp()[0].Keys(); len(keys) != 1 || keys[0] != "b" {
		t.Fatalf("focused keymap = %v", keys)
	}

	_, km = s.SetFocus(FocusAll())
	if got := len(km.ShortHelp()); got != 2 {
		t.Fatalf("merged keymap has %d bindings, want 2", got)
	}
}

func TestDropKeys(t *testing.T) {
	if DropKeys(nil, tea.KeyMsg{Type: tea.KeyEsc}) != nil {
		t.Fatal("key message not dropped")
	}
	msg := tea.WindowSizeMsg{Width: 1}
	if DropKeys(nil, msg) != msg {
		t.Fatal("non-key message changed")
	}
}
