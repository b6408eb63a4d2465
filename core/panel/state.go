// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/core/render"
)

// CaptureState is the state of the scancode capture toggle.
type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureCapturing
)

func (s CaptureState) String() string {
	if s == CaptureCapturing {
		return "capturing"
	}
	return "idle"
}

// ModifierSet is a set of engaged modifiers.
type ModifierSet uint8

func modifierBit(m model.ModifierID) ModifierSet {
	for i, id := range model.Modifiers() {
		if id == m {
			return 1 << i
		}
	}
	return 0
}

// Has reports whether m is engaged.
func (s ModifierSet) Has(m model.ModifierID) bool { return s&modifierBit(m) != 0 }

// With returns s with m engaged.
func (s ModifierSet) With(m model.ModifierID) ModifierSet { return s | modifierBit(m) }

// Without returns s with m released.
func (s ModifierSet) Without(m model.ModifierID) ModifierSet { return s &^ modifierBit(m) }

// List returns the engaged modifiers in canonical order.
func (s ModifierSet) List() []model.ModifierID {
	var out []model.ModifierID
	for _, m := range model.Modifiers() {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// PanelState is the complete state of one open popover. It is a value: every
// update function returns a new PanelState and leaves the receiver untouched.
type PanelState struct {
	ActiveContentBlock model.ContentBlockID
	ActiveModifiers    ModifierSet
	ActiveLayerKey     model.LayerKeyID
	ControlsGated      bool

	Capture              CaptureState
	MouseAction          model.MouseActionTypeID
	ConfirmedMouseAction model.MouseActionTypeID
	// MouseConfig is the chosen config button as "<type>:<button>".
	MouseConfig      string
	PreviewImage     string
	PreviewDimmed    bool
	LayerHelpVisible bool

	selections map[string]string
}

// NewPanelState returns the state of a freshly opened popover: the keypress
// tab, layer key None (so key setup is gated), the registry's default
// modifiers, and the first option of every dropdown selected.
func NewPanelState(reg *registry.Registry, imagesDir string) PanelState {
	s := PanelState{
		ActiveContentBlock: model.BlockKeypress,
		ActiveLayerKey:     model.LayerNone,
		ControlsGated:      true,
		MouseAction:        model.MouseActionTypes()[0],
		selections:         map[string]string{},
	}

	for _, id := range model.ContentBlocks() {
		block, err := reg.Block(id)
		if err != nil {
			continue
		}
		for _, section := range block.Sections {
			switch {
			case section.Kind == registry.KindSelect && len(section.Options) > 0:
				s.selections[section.ID] = section.Options[0].Value
			case section.Kind == registry.KindToggles:
				for _, opt := range section.Options {
					if opt.Engaged {
						s.ActiveModifiers = s.ActiveModifiers.With(model.ModifierID(opt.Value))
					}
				}
			}
		}
		if keymap, ok := block.Section("keymap"); ok && len(keymap.Options) > 0 {
			s.PreviewImage = render.ImagePath(imagesDir, keymap.Options[0].ImageRef)
		}
	}
	return s
}

// Selection returns the selected value of a dropdown section.
func (s PanelState) Selection(section string) (string, bool) {
	v, ok := s.selections[section]
	return v, ok
}

// Selections returns a copy of all dropdown selections.
func (s PanelState) Selections() map[string]string {
	return maps.Clone(s.selections)
}

// WithContentBlock returns s showing block id.
func (s PanelState) WithContentBlock(id model.ContentBlockID) PanelState {
	s.ActiveContentBlock = id
	return s
}

// WithLayerKey returns s with layer key k active. Key setup is gated exactly
// when k is None.
func (s PanelState) WithLayerKey(k model.LayerKeyID) PanelState {
	s.ActiveLayerKey = k
	s.ControlsGated = k == model.LayerNone
	return s
}

// WithModifier returns s with m engaged or released.
func (s PanelState) WithModifier(m model.ModifierID, engaged bool) PanelState {
	if engaged {
		s.ActiveModifiers = s.ActiveModifiers.With(m)
	} else {
		s.ActiveModifiers = s.ActiveModifiers.Without(m)
	}
	return s
}

// WithCaptureToggled returns s with the capture toggle flipped.
func (s PanelState) WithCaptureToggled() PanelState {
	if s.Capture == CaptureIdle {
		s.Capture = CaptureCapturing
	} else {
		s.Capture = CaptureIdle
	}
	return s
}

// WithMouseAction returns s editing mouse action type t.
func (s PanelState) WithMouseAction(t model.MouseActionTypeID) PanelState {
	s.MouseAction = t
	return s
}

// WithMouseConfig returns s with button chosen inside the sub-panel being
// edited. The edited action type becomes the confirmed one.
func (s PanelState) WithMouseConfig(button string) PanelState {
	s.MouseConfig = string(s.MouseAction) + ":" + button
	s.ConfirmedMouseAction = s.MouseAction
	return s
}

// WithSelection returns s with value selected in a dropdown section.
func (s PanelState) WithSelection(section, value string) PanelState {
	s.selections = maps.Clone(s.selections)
	if s.selections == nil {
		s.selections = map[string]string{}
	}
	s.selections[section] = value
	return s
}

// WithPreviewImage returns s showing image in the layout preview.
func (s PanelState) WithPreviewImage(image string) PanelState {
	s.PreviewImage = image
	return s
}

// WithPreviewDimmed returns s with the layout preview dimmed or restored.
func (s PanelState) WithPreviewDimmed(dimmed bool) PanelState {
	s.PreviewDimmed = dimmed
	return s
}

// WithLayerHelp returns s with the layer help text shown or hidden.
func (s PanelState) WithLayerHelp(visible bool) PanelState {
	s.LayerHelpVisible = visible
	return s
}

// Summary describes the assignment the active tab represents, in a single line.
func (s PanelState) Summary() string {
	switch s.ActiveContentBlock {
	case model.BlockKeypress:
		parts := make([]string, 0, 4)
		for _, m := range s.ActiveModifiers.List() {
			parts = append(parts, string(m))
		}
		parts = append(parts, s.selections["scancode"])
		out := "keypress " + strings.Join(parts, "+")
		if role := s.selections["secondaryRole"]; role != "" && role != "None" {
			out += " (secondary " + role + ")"
		}
		return out + " layer-key " + string(s.ActiveLayerKey)
	case model.BlockLayer:
		return fmt.Sprintf("layer %s (%s)", s.selections["layerTarget"], s.selections["layerMode"])
	case model.BlockMouse:
		if s.MouseConfig == "" {
			return "mouse " + string(s.MouseAction)
		}
		return "mouse " + s.MouseConfig
	case model.BlockMacro:
		return "macro " + s.selections["macro"]
	case model.BlockSwitchKeymap:
		return "keymap " + s.selections["keymap"]
	default:
		return "none"
	}
}

// String is a stable debug representation.
func (s PanelState) String() string {
	keys := make([]string, 0, len(s.selections))
	for k := range s.selections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sel := make([]string, len(keys))
	for i, k := range keys {
		sel[i] = k + "=" + s.selections[k]
	}
	return fmt.Sprintf("block=%s layer=%s gated=%t mods=%v capture=%s mouse=%s selections=[%s]",
		s.ActiveContentBlock, s.ActiveLayerKey, s.ControlsGated, s.ActiveModifiers.List(),
		s.Capture, s.MouseAction, strings.Join(sel, " "))
}
