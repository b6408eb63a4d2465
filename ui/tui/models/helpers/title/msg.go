// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set replaces the part of the window title after the base.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
