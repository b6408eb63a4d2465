// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keyeditor/ui/tui/models/components/stack"
	"github.com/toeirei/keyeditor/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// The header hides itself on terminals too short to also fit the popover.
func (s *sizeConfig) Calculate(_ util.Model, _ int, total_size int) int {
	if total_size >= 16+1+lipgloss.Height(logo) {
		return lipgloss.Height(logo) + 1
	}
	return 0
}
