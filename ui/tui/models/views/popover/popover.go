// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popover is the interactive view of the key editor panel. Key
// presses are translated into panel events; the panel's live markup is drawn
// inside a rounded border with a cursor on the focused control.
package popover

import (
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/panel"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/internal/i18n"
	"github.com/toeirei/keyeditor/internal/logging"
	"github.com/toeirei/keyeditor/ui/tui/models/components/dropdown"
	"github.com/toeirei/keyeditor/ui/tui/models/components/popup"
	windowtitle "github.com/toeirei/keyeditor/ui/tui/models/helpers/title"
	"github.com/toeirei/keyeditor/ui/tui/util"
	"github.com/toeirei/keyeditor/util/slicest"
)

var borderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
	Padding(0, 1)

type Option = func(m *Model)

// WithDropdownSize bounds the dropdown popups.
func WithDropdownSize(width, height int) Option {
	return func(m *Model) {
		m.dropdownWidth, m.dropdownHeight = width, height
	}
}

// WithClipboard replaces the clipboard writer used by the copy binding.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.copy = write
	}
}

type Model struct {
	ctrl           *panel.Controller
	cursor         int
	size           util.Size
	dropdownWidth  int
	dropdownHeight int
	copy           func(string) error
}

func New(ctrl *panel.Controller, opts ...Option) *Model {
	m := &Model{
		ctrl:           ctrl,
		dropdownWidth:  40,
		dropdownHeight: 14,
		copy:           clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return windowtitle.Set(m.tabTitle())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case dropdown.SelectedMsg:
		return m.dispatch(panel.Select(msg.Control, msg.Value))
	case dropdown.ClosedMsg:
		return m.dispatch(panel.Close(msg.Control))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultKeyMap.NextTab):
		return m.shiftTab(1)
	case key.Matches(msg, DefaultKeyMap.PrevTab):
		return m.shiftTab(-1)
	case key.Matches(msg, DefaultKeyMap.JumpTab):
		n, err := strconv.Atoi(msg.String())
		tabs := m.ctrl.Tabs()
		if err != nil || n < 1 || n > len(tabs) {
			return nil
		}
		return m.selectTab(tabs[n-1].Content)
	case key.Matches(msg, DefaultKeyMap.Up):
		m.moveCursor(-1)
	case key.Matches(msg, DefaultKeyMap.Down):
		m.moveCursor(1)
	case key.Matches(msg, DefaultKeyMap.Activate):
		return m.activate()
	case key.Matches(msg, DefaultKeyMap.Copy):
		return m.copySummary()
	case key.Matches(msg, DefaultKeyMap.Quit):
		return tea.Quit
	}
	return nil
}

func (m *Model) shiftTab(delta int) tea.Cmd {
	tabs := m.ctrl.Tabs()
	active := m.ctrl.State().ActiveContentBlock
	i := slicest.IndexFunc(tabs, func(tab registry.Tab) bool { return tab.Content == active })
	return m.selectTab(tabs[util.Wrap(max(i, 0), delta, len(tabs))].Content)
}

func (m *Model) selectTab(id model.ContentBlockID) tea.Cmd {
	if err := m.ctrl.Dispatch(panel.Click(panel.TabControl(id))); err != nil {
		return m.fail(err)
	}
	m.cursor = 0
	return windowtitle.Set(m.tabTitle())
}

func (m *Model) moveCursor(delta int) {
	m.cursor = util.Wrap(m.cursor, delta, len(m.ctrl.Focusable()))
}

// Focused returns the control under the cursor, "" when the region has none.
func (m Model) Focused() string {
	ids := m.ctrl.Focusable()
	if len(ids) == 0 {
		return ""
	}
	return ids[util.Clamp(m.cursor, 0, len(ids)-1)]
}

func (m *Model) activate() tea.Cmd {
	id := m.Focused()
	if id == "" || !m.ctrl.Enabled(id) {
		return nil
	}
	if _, ok := panel.IsSelectControl(id); ok {
		return m.openDropdown(id)
	}
	return m.dispatch(panel.Click(id))
}

func (m *Model) openDropdown(id string) tea.Cmd {
	dd, err := m.ctrl.Dropdown(id)
	if err != nil {
		return m.fail(err)
	}
	if err := m.ctrl.Dispatch(panel.Open(id)); err != nil {
		return m.fail(err)
	}
	return popup.OpenWithCallback(
		util.ModelPointer(dropdown.New(dd, m.dropdownWidth, m.dropdownHeight)),
		dropdown.ClosedCmd(id),
	)
}

func (m *Model) copySummary() tea.Cmd {
	summary := m.ctrl.Summary()
	if err := m.copy(summary); err != nil {
		logging.Warnf("clipboard: %v", err)
		return util.StatusCmd(i18n.Tf("status.copy_failed", map[string]any{"Error": err.Error()}), true)
	}
	logging.Debugf("copied %q", summary)
	return util.StatusCmd(i18n.T("status.copied"), false)
}

func (m *Model) dispatch(ev panel.Event) tea.Cmd {
	if err := m.ctrl.Dispatch(ev); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *Model) fail(err error) tea.Cmd {
	logging.Errorf("popover: %v", err)
	return util.StatusCmd(i18n.Tf("status.error", map[string]any{"Error": err.Error()}), true)
}

func (m Model) tabTitle() string {
	active := m.ctrl.State().ActiveContentBlock
	for _, tab := range m.ctrl.Tabs() {
		if tab.Content == active {
			return i18n.T(tab.Title)
		}
	}
	return string(active)
}

func (m Model) View() string {
	markup, err := m.ctrl.View(m.Focused())
	if err != nil {
		return i18n.Tf("status.error", map[string]any{"Error": err.Error()})
	}
	box := borderStyle.Render(string(markup))
	if m.size.Width == 0 || m.size.Height == 0 {
		return box
	}
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
