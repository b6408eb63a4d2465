// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"strings"

	"github.com/toeirei/keyeditor/core/model"
)

// GroupID names a mutually exclusive selection group.
type GroupID string

const (
	GroupTabs           GroupID = "tab"
	GroupLayerKey       GroupID = "layer-key"
	GroupMouseType      GroupID = "mouse-type"
	GroupMouseConfig    GroupID = "mouse-config"
	GroupMouseConfirmed GroupID = "mouse-confirmed"
)

// CaptureControl is the id of the capture keystroke button.
const CaptureControl = "capture"

// Gate names used as disable reasons.
const (
	gateLayerKey = "layer-key"
	gateCapture  = "capture"
)

// TabControl returns the control id of a tab button.
func TabControl(id model.ContentBlockID) string { return "tab:" + string(id) }

// LayerKeyControl returns the control id of a layer key button.
func LayerKeyControl(id model.LayerKeyID) string { return "layer-key:" + string(id) }

// ModifierControl returns the control id of a modifier button.
func ModifierControl(id model.ModifierID) string { return "modifier:" + string(id) }

// SelectControl returns the control id of the dropdown for a registry section.
func SelectControl(section string) string { return "select:" + section }

// MouseTypeControl returns the control id of a mouse action type link.
func MouseTypeControl(t model.MouseActionTypeID) string { return "mouse-type:" + string(t) }

// MouseConfigControl returns the control id of a config button inside a mouse sub-panel.
func MouseConfigControl(t model.MouseActionTypeID, button string) string {
	return "mouse-config:" + string(t) + ":" + button
}

// splitControl splits "kind:rest" control ids.
func splitControl(id string) (kind, rest string) {
	kind, rest, _ = strings.Cut(id, ":")
	return kind, rest
}

// IsSelectControl reports whether id names a dropdown and returns its section.
func IsSelectControl(id string) (string, bool) {
	kind, rest := splitControl(id)
	return rest, kind == "select"
}
