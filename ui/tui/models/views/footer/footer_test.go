// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyeditor/ui/tui/util"
)

type keys []key.Binding

func (k keys) ShortHelp() []key.Binding  { return k }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestFooter_MergesBaseKeyMap(t *testing.T) {
	base := keys{key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))}
	m := New(base)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: keys{key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy"))}})

	out := m.View()
	if !strings.Contains(out, "copy") || !strings.Contains(out, "exit") {
		t.Fatalf("footer should show focused and base bindings, got:\n%s", out)
	}
}

func TestFooter_Status(t *testing.T) {
	m := New(keys{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	if SizeConfig.Calculate(m, 0, 0) != 2 {
		t.Fatalf("empty footer should take the border plus one line")
	}

	m.Update(util.StatusMsg{Text: "Assignment copied to clipboard."})
	if !strings.Contains(m.View(), "Assignment copied") {
		t.Fatalf("status missing from view")
	}
	if SizeConfig.Calculate(m, 0, 0) != 3 {
		t.Fatalf("status line should grow the footer")
	}

	m.Update(util.StatusMsg{})
	if m.Status().Text != "" {
		t.Fatalf("empty status should clear")
	}
}
