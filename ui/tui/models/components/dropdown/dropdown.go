// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package dropdown is the option picker opened for select controls. It wraps
// a bubbles list with fuzzy search and is shown through the popup injector.
package dropdown

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/panel"
	"github.com/toeirei/keyeditor/internal/i18n"
	"github.com/toeirei/keyeditor/ui/tui/models/components/popup"
	"github.com/toeirei/keyeditor/ui/tui/util"
	"github.com/toeirei/keyeditor/util/slicest"
)

// SelectedMsg reports the option chosen in the dropdown of Control.
type SelectedMsg struct {
	Control string
	Value   string
}

// ClosedMsg is sent after the dropdown of Control was removed.
type ClosedMsg struct {
	Control string
}

type item struct {
	opt  model.OptionDescriptor
	text string
}

// FilterValue matches the label, the alternate name and the raw value.
func (i item) FilterValue() string {
	return i.opt.Label + " " + i.opt.AlternateName + " " + i.opt.Value
}
func (i item) Title() string       { return i.text }
func (i item) Description() string { return i.opt.GroupName }

type Model struct {
	control string
	list    list.Model
	size    util.Size
	width   int
	height  int
}

// New builds the dropdown for dd. width and height bound the list; the
// popup may shrink it further.
func New(dd panel.Dropdown, width, height int) *Model {
	format := dd.Config.ResultFormatter
	items := slicest.Map(dd.Options, func(opt model.OptionDescriptor) list.Item {
		text := opt.Label
		if format != nil {
			text = format(opt).String()
		}
		return item{opt: opt, text: text}
	})

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = false

	l := list.New(items, delegate, width, height)
	l.Title = i18n.T(dd.Title)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(dd.Config.SearchEnabled)
	l.Filter = FuzzyFilter

	if i := slicest.IndexFunc(dd.Options, func(o model.OptionDescriptor) bool { return o.Value == dd.Selected }); i >= 0 {
		l.Select(i)
	}

	return &Model{control: dd.Control, list: l, width: width, height: height}
}

// FuzzyFilter ranks targets against term, best match first.
func FuzzyFilter(term string, targets []string) []list.Rank {
	matches := fuzzy.Find(term, targets)
	return slicest.Map(matches, func(m fuzzy.Match) list.Rank {
		return list.Rank{Index: m.Index, MatchedIndexes: m.MatchedIndexes}
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.list.SetSize(min(m.width, m.size.Width), min(m.height, m.size.Height))
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, DefaultKeyMap.Choose):
			if it, ok := m.list.SelectedItem().(item); ok {
				selected := SelectedMsg{Control: m.control, Value: it.opt.Value}
				return tea.Batch(func() tea.Msg { return selected }, popup.Close())
			}
			return nil
		case key.Matches(msg, DefaultKeyMap.Cancel):
			if m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return nil
			}
			return popup.Close()
		}
	}

	return util.UpdateTeaModelInplace(msg, &m.list)
}

func (m Model) View() string {
	return m.list.View()
}

// Control returns the select control the dropdown edits.
func (m Model) Control() string { return m.control }

// Filtering reports whether the search input is open.
func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	km := DefaultKeyMap
	km.Search.SetEnabled(m.list.FilteringEnabled())
	return nil, km
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// ClosedCmd is the popup close callback announcing ClosedMsg for control.
func ClosedCmd(control string) func(*util.Model) tea.Cmd {
	return func(*util.Model) tea.Cmd {
		return func() tea.Msg { return ClosedMsg{Control: control} }
	}
}
