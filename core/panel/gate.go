// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import "slices"

// Gate disables a fixed set of dependent controls under its own name. Gates
// sharing a control do not interfere: each only adds or removes its reason.
type Gate struct {
	name       string
	controls   *ControlSet
	dependents []string
	gated      bool
}

// NewGate returns an open gate over dependents.
func NewGate(name string, controls *ControlSet, dependents ...string) *Gate {
	return &Gate{name: name, controls: controls, dependents: slices.Clone(dependents)}
}

// SetGated disables (true) or re-enables (false) every dependent. Setting the
// current value again changes nothing.
func (g *Gate) SetGated(gated bool) {
	g.gated = gated
	for _, id := range g.dependents {
		if gated {
			g.controls.Disable(id, g.name)
		} else {
			g.controls.Enable(id, g.name)
		}
	}
}

// Gated reports the last value passed to SetGated. The explanatory message
// tied to a gate is visible exactly when this is true.
func (g *Gate) Gated() bool { return g.gated }

// Name returns the disable reason used by the gate.
func (g *Gate) Name() string { return g.name }

// Dependents returns the gated control ids.
func (g *Gate) Dependents() []string { return slices.Clone(g.dependents) }
