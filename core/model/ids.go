// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// ContentBlockID names one of the tabs of the key editor popover.
type ContentBlockID string

const (
	BlockKeypress     ContentBlockID = "keypress"
	BlockLayer        ContentBlockID = "layer"
	BlockMouse        ContentBlockID = "mouse"
	BlockMacro        ContentBlockID = "macro"
	BlockSwitchKeymap ContentBlockID = "switchKeymap"
	BlockNone         ContentBlockID = "none"
)

var contentBlocks = []ContentBlockID{
	BlockKeypress,
	BlockLayer,
	BlockMouse,
	BlockMacro,
	BlockSwitchKeymap,
	BlockNone,
}

// ContentBlocks returns every content block in tab order.
func ContentBlocks() []ContentBlockID {
	return append([]ContentBlockID(nil), contentBlocks...)
}

// Valid reports whether id is one of the known content blocks.
func (id ContentBlockID) Valid() bool {
	for _, b := range contentBlocks {
		if b == id {
			return true
		}
	}
	return false
}

// ModifierID names one of the eight modifier keys.
type ModifierID string

const (
	LShift ModifierID = "LShift"
	LCtrl  ModifierID = "LCtrl"
	LSuper ModifierID = "LSuper"
	LAlt   ModifierID = "LAlt"
	RShift ModifierID = "RShift"
	RCtrl  ModifierID = "RCtrl"
	RSuper ModifierID = "RSuper"
	RAlt   ModifierID = "RAlt"
)

// Modifiers returns all modifiers, left hand first.
func Modifiers() []ModifierID {
	return []ModifierID{LShift, LCtrl, LSuper, LAlt, RShift, RCtrl, RSuper, RAlt}
}

// LayerKeyID is the layer role assigned to a key. Exactly one is active.
type LayerKeyID string

const (
	LayerNone  LayerKeyID = "None"
	LayerMod   LayerKeyID = "Mod"
	LayerFn    LayerKeyID = "Fn"
	LayerMouse LayerKeyID = "Mouse"
)

// LayerKeys returns the layer keys in button order.
func LayerKeys() []LayerKeyID {
	return []LayerKeyID{LayerNone, LayerMod, LayerFn, LayerMouse}
}

// MouseActionTypeID names a mouse action sub-panel.
type MouseActionTypeID string

const (
	MouseMove   MouseActionTypeID = "move"
	MouseScroll MouseActionTypeID = "scroll"
	MouseClick  MouseActionTypeID = "click"
	MouseSpeed  MouseActionTypeID = "speed"
)

// MouseActionTypes returns the mouse action types in link order.
func MouseActionTypes() []MouseActionTypeID {
	return []MouseActionTypeID{MouseMove, MouseScroll, MouseClick, MouseSpeed}
}
