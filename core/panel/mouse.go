// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"fmt"

	"github.com/toeirei/keyeditor/core/model"
)

// MouseSelector shows one mouse action sub-panel at a time and remembers
// which action type owns the chosen config button.
type MouseSelector struct {
	mirror *Mirror
}

// NewMouseSelector defines the mouse groups on mirror.
func NewMouseSelector(mirror *Mirror) *MouseSelector {
	var types, configs []string
	for _, t := range model.MouseActionTypes() {
		types = append(types, MouseTypeControl(t))
		for _, b := range MouseButtons(t) {
			configs = append(configs, MouseConfigControl(t, b))
		}
	}
	mirror.Define(GroupMouseType, types...)
	mirror.Define(GroupMouseConfig, configs...)
	mirror.Define(GroupMouseConfirmed, types...)
	return &MouseSelector{mirror: mirror}
}

// MouseButtons returns the config buttons of action type t.
func MouseButtons(t model.MouseActionTypeID) []string {
	switch t {
	case model.MouseMove, model.MouseScroll:
		return []string{"up", "down", "left", "right"}
	case model.MouseClick:
		return []string{"left", "middle", "right"}
	case model.MouseSpeed:
		return []string{"accelerate", "decelerate"}
	}
	return nil
}

// SelectActionType makes t the visible sub-panel.
func (s *MouseSelector) SelectActionType(t model.MouseActionTypeID) error {
	return s.mirror.SelectExclusive(GroupMouseType, MouseTypeControl(t))
}

// Active returns the visible action type.
func (s *MouseSelector) Active() (model.MouseActionTypeID, bool) {
	sel, ok := s.mirror.Selected(GroupMouseType)
	if !ok {
		return "", false
	}
	_, rest := splitControl(sel)
	return model.MouseActionTypeID(rest), true
}

// Visible reports whether the sub-panel of t is shown.
func (s *MouseSelector) Visible(t model.MouseActionTypeID) bool {
	active, ok := s.Active()
	return ok && active == t
}

// SelectConfig chooses button inside the visible sub-panel and confirms the
// visible action type.
func (s *MouseSelector) SelectConfig(button string) error {
	t, ok := s.Active()
	if !ok {
		return fmt.Errorf("select mouse config %q: no action type shown", button)
	}
	if err := s.mirror.SelectExclusive(GroupMouseConfig, MouseConfigControl(t, button)); err != nil {
		return err
	}
	return s.mirror.SelectExclusive(GroupMouseConfirmed, MouseTypeControl(t))
}

// Confirmed returns the action type owning the chosen config button.
func (s *MouseSelector) Confirmed() (model.MouseActionTypeID, bool) {
	sel, ok := s.mirror.Selected(GroupMouseConfirmed)
	if !ok {
		return "", false
	}
	_, rest := splitControl(sel)
	return model.MouseActionTypeID(rest), true
}
