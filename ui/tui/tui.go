// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keyeditor/core/panel"
	"github.com/toeirei/keyeditor/ui/tui/models/views/popover"
	"github.com/toeirei/keyeditor/ui/tui/models/views/root"
)

// Run shows the editor for ctrl until the user quits.
func Run(ctrl *panel.Controller, version string, opts ...popover.Option) error {
	_, err := tea.NewProgram(
		root.New(ctrl, version, opts...),
		tea.WithAltScreen(),
	).Run()
	return err
}
