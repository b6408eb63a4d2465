// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"fmt"
	"slices"

	"github.com/toeirei/keyeditor/core/model"
)

type group struct {
	members  []string
	selected string
}

// Mirror tracks which control of each exclusive group is selected and which
// independent toggles are engaged.
type Mirror struct {
	groups  map[GroupID]*group
	toggles map[string]bool
}

// NewMirror returns an empty Mirror.
func NewMirror() *Mirror {
	return &Mirror{
		groups:  map[GroupID]*group{},
		toggles: map[string]bool{},
	}
}

// Define (re)creates group g with the given members and no selection.
func (m *Mirror) Define(g GroupID, members ...string) {
	m.groups[g] = &group{members: slices.Clone(members)}
}

// Drop forgets group g.
func (m *Mirror) Drop(g GroupID) {
	delete(m.groups, g)
}

// Members returns the members of g in definition order.
func (m *Mirror) Members(g GroupID) []string {
	if grp, ok := m.groups[g]; ok {
		return slices.Clone(grp.members)
	}
	return nil
}

// SelectExclusive marks member as the only selected member of g.
func (m *Mirror) SelectExclusive(g GroupID, member string) error {
	grp, ok := m.groups[g]
	if !ok || !slices.Contains(grp.members, member) {
		return fmt.Errorf("select %q in %q: %w", member, g, model.ErrInvalidGroupMembership)
	}
	grp.selected = member
	return nil
}

// Selected returns the selected member of g.
func (m *Mirror) Selected(g GroupID) (string, bool) {
	grp, ok := m.groups[g]
	if !ok || grp.selected == "" {
		return "", false
	}
	return grp.selected, true
}

// IsSelected reports whether member is the selected member of g.
func (m *Mirror) IsSelected(g GroupID, member string) bool {
	sel, ok := m.Selected(g)
	return ok && sel == member
}

// DefineToggle registers an independent toggle in the given state.
func (m *Mirror) DefineToggle(member string, engaged bool) {
	m.toggles[member] = engaged
}

// DropToggle forgets a toggle.
func (m *Mirror) DropToggle(member string) {
	delete(m.toggles, member)
}

// Toggle flips member and returns its new state.
func (m *Mirror) Toggle(member string) (bool, error) {
	engaged, ok := m.toggles[member]
	if !ok {
		return false, fmt.Errorf("toggle %q: %w", member, model.ErrInvalidGroupMembership)
	}
	m.toggles[member] = !engaged
	return !engaged, nil
}

// Engaged reports whether toggle member is engaged.
func (m *Mirror) Engaged(member string) bool {
	return m.toggles[member]
}

// Len returns the number of defined groups and toggles.
func (m *Mirror) Len() (groups, toggles int) {
	return len(m.groups), len(m.toggles)
}
