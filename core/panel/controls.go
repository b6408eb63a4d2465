// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import "slices"

// ControlSet holds the interactive controls of the mounted regions and the
// reasons each one is currently disabled. A control is enabled when it has no
// reasons.
type ControlSet struct {
	order   []string
	reasons map[string]map[string]struct{}
}

// NewControlSet returns an empty ControlSet.
func NewControlSet() *ControlSet {
	return &ControlSet{reasons: map[string]map[string]struct{}{}}
}

// Register adds an enabled control. Registering twice is a no-op.
func (s *ControlSet) Register(id string) {
	if _, ok := s.reasons[id]; ok {
		return
	}
	s.order = append(s.order, id)
	s.reasons[id] = map[string]struct{}{}
}

// Unregister removes a control with all its reasons.
func (s *ControlSet) Unregister(id string) {
	if _, ok := s.reasons[id]; !ok {
		return
	}
	delete(s.reasons, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
}

// Has reports whether id is registered.
func (s *ControlSet) Has(id string) bool {
	_, ok := s.reasons[id]
	return ok
}

// Disable adds reason to id.
func (s *ControlSet) Disable(id, reason string) {
	if r, ok := s.reasons[id]; ok {
		r[reason] = struct{}{}
	}
}

// Enable removes reason from id.
func (s *ControlSet) Enable(id, reason string) {
	if r, ok := s.reasons[id]; ok {
		delete(r, reason)
	}
}

// Enabled reports whether id is registered and has no disable reasons.
func (s *ControlSet) Enabled(id string) bool {
	r, ok := s.reasons[id]
	return ok && len(r) == 0
}

// DisabledBy reports whether reason currently disables id.
func (s *ControlSet) DisabledBy(id, reason string) bool {
	_, ok := s.reasons[id][reason]
	return ok
}

// IDs returns the registered controls in registration order.
func (s *ControlSet) IDs() []string {
	return slices.Clone(s.order)
}

// Len returns the number of registered controls.
func (s *ControlSet) Len() int {
	return len(s.order)
}
