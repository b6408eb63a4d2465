// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package panel implements the state machine behind the key editor popover.
//
// A Controller owns one PanelState for the lifetime of an open popover. User
// interaction arrives as Events; the handlers bound for the active content
// block compute the next PanelState with pure update functions and project it
// onto the Mirror (selected/engaged markers) and the Gates (disabled
// controls). Switching tabs unmounts the old region, which removes every
// handler it subscribed, before the new region is rendered and mounted.
//
// Rendering is a separate projection: View and Render hand a read-only view
// context to a render.Renderer and never mutate the controller.
package panel
