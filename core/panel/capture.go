// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

// CaptureToggle switches the capture button between Idle and Capturing.
// While capturing, the modifiers and the scancode select are disabled.
type CaptureToggle struct {
	state CaptureState
	gate  *Gate
}

// NewCaptureToggle returns an idle toggle that gates dependents while capturing.
func NewCaptureToggle(controls *ControlSet, dependents ...string) *CaptureToggle {
	return &CaptureToggle{gate: NewGate(gateCapture, controls, dependents...)}
}

// Set forces state s.
func (c *CaptureToggle) Set(s CaptureState) {
	c.state = s
	c.gate.SetGated(s == CaptureCapturing)
}

// Toggle flips the state and returns the new one.
func (c *CaptureToggle) Toggle() CaptureState {
	if c.state == CaptureIdle {
		c.Set(CaptureCapturing)
	} else {
		c.Set(CaptureIdle)
	}
	return c.state
}

// State returns the current state.
func (c *CaptureToggle) State() CaptureState { return c.state }
