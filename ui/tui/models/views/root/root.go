// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyeditor/core/panel"
	"github.com/toeirei/keyeditor/ui/tui/models/components/dropdown"
	"github.com/toeirei/keyeditor/ui/tui/models/components/header"
	"github.com/toeirei/keyeditor/ui/tui/models/components/popup"
	"github.com/toeirei/keyeditor/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/keyeditor/ui/tui/models/helpers/title"
	"github.com/toeirei/keyeditor/ui/tui/models/views/footer"
	"github.com/toeirei/keyeditor/ui/tui/models/views/popover"
	"github.com/toeirei/keyeditor/ui/tui/util"
)

const title string = "Keyeditor"

type Model struct {
	stack        *stack.Model
	injector     *popup.Injector
	popover      *util.Model
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

func New(ctrl *panel.Controller, version string, opts ...popover.Option) *Model {
	if version == "" {
		version = "unknown version"
	}

	_header := header.New(version)
	_footer := footer.New(&BaseKeyMap)

	// create model pointers for multiple references
	_popover_ptr := util.ModelPointer(popover.New(ctrl, opts...))
	_footer_ptr := util.ModelPointer(_footer)
	_injector := popup.NewInjector(_popover_ptr)

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(_header), header.SizeConfig, stack.DropKeys),
			stack.WithItem(
				util.ModelPointer(_injector),
				stack.VariableSize(1)),
			stack.WithItem(_footer_ptr, footer.SizeConfig, stack.DropKeys),
		),
		injector:     _injector,
		popover:      _popover_ptr,
		footer:       _footer_ptr,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, version), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing() && msg.Type == tea.KeyRunes {
			return m, m.stack.Update(msg)
		}
		switch {
		case key.Matches(msg, BaseKeyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, BaseKeyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			return m, nil
		}
		return m, m.stack.Update(msg)
	case dropdown.SelectedMsg, dropdown.ClosedMsg:
		// a dropdown may still be on top when its result arrives
		return m, (*m.popover).Update(msg)
	}
	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

// typing reports whether the topmost popup is a dropdown with an open search
// input, which owns printable keys.
func (m Model) typing() bool {
	top := m.injector.Top()
	if top == nil {
		return false
	}
	dd, ok := (*top).(*dropdown.Model)
	return ok && dd.Filtering()
}

func (m Model) View() string {
	return m.stack.View()
}

// *Model implements util.Model
var _ tea.Model = (*Model)(nil)
