// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/internal/i18n"
)

// viewContext is the data handed to the templates. Without a controller it
// describes the block as configured: every option listed, every sub-panel and
// message shown, no state markers.
type viewContext struct {
	Tabs  []registry.Tab
	Block registry.Block
	Live  bool

	c     *Controller
	focus string
}

type selectView struct {
	Section registry.Section
	Live    bool
	Control string
}

func (c *Controller) staticContext(block registry.Block) viewContext {
	return viewContext{Tabs: c.reg.Tabs(), Block: block, c: c}
}

func (c *Controller) liveContext(block registry.Block, focus string) viewContext {
	return viewContext{Tabs: c.reg.Tabs(), Block: block, Live: true, c: c, focus: focus}
}

func (v viewContext) Section(id string) *registry.Section {
	sec, ok := v.Block.Section(id)
	if !ok {
		return nil
	}
	return &sec
}

func (v viewContext) Control(id, label string) string {
	if !v.Live {
		return "[" + label + "]"
	}
	c := v.c
	flags := ""
	if c.isActive(id) {
		flags += "*"
	}
	if c.isConfirmed(id) {
		flags += "+"
	}
	if c.controls.Has(id) && !c.controls.Enabled(id) {
		flags += "-"
	}
	out := "[" + flags + label + "]"
	if id == v.focus {
		out = ">" + out
	}
	return out
}

func (v viewContext) Button(prefix, value, label string) string {
	return v.Control(prefix+":"+value, label)
}

func (v viewContext) Tab(t registry.Tab) string {
	return v.Control(TabControl(t.Content), t.Icon+" "+i18n.T(t.Title))
}

func (v viewContext) SelectData(sectionID string) selectView {
	sec, _ := v.Block.Section(sectionID)
	sv := selectView{Section: sec, Live: v.Live}
	if !v.Live {
		sv.Control = "[▾]"
		return sv
	}
	label := ""
	if value, ok := v.c.state.Selection(sectionID); ok {
		if opt, ok := model.FindOption(sec.Options, value); ok {
			label = v.c.formatter(opt).String() + " "
		}
	}
	sv.Control = v.Control(SelectControl(sectionID), label+"▾")
	return sv
}

func (v viewContext) Gated() bool {
	if !v.Live {
		return true
	}
	return v.c.keyGate != nil && v.c.keyGate.Gated()
}

func (v viewContext) Capturing() bool {
	return v.Live && v.c.capture != nil && v.c.capture.State() == CaptureCapturing
}

func (v viewContext) CaptureButton() string {
	label := i18n.T("keypress.capture_start")
	if v.Capturing() {
		label = i18n.T("keypress.capture_stop")
	}
	return v.Control(CaptureControl, label)
}

func (v viewContext) MouseTypes() []string {
	types := model.MouseActionTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func (v viewContext) MouseVisible(t string) bool {
	if !v.Live {
		return true
	}
	return v.c.mouse != nil && v.c.mouse.Visible(model.MouseActionTypeID(t))
}

func (v viewContext) LayerHelp() bool {
	return !v.Live || v.c.state.LayerHelpVisible
}

func (v viewContext) Preview() string {
	if v.Live {
		return v.c.state.PreviewImage
	}
	if sec, ok := v.Block.Section("keymap"); ok && len(sec.Options) > 0 {
		return v.c.imagePath(sec.Options[0].ImageRef)
	}
	return ""
}

func (v viewContext) Dimmed() bool {
	return v.Live && v.c.state.PreviewDimmed
}

func (c *Controller) isActive(id string) bool {
	kind, _ := splitControl(id)
	switch kind {
	case "tab":
		return c.mirror.IsSelected(GroupTabs, id)
	case "layer-key":
		return c.mirror.IsSelected(GroupLayerKey, id)
	case "modifier":
		return c.mirror.Engaged(id)
	case "mouse-type":
		return c.mirror.IsSelected(GroupMouseType, id)
	case "mouse-config":
		return c.mirror.IsSelected(GroupMouseConfig, id)
	case CaptureControl:
		return c.capture != nil && c.capture.State() == CaptureCapturing
	}
	return false
}

func (c *Controller) isConfirmed(id string) bool {
	return c.mirror.IsSelected(GroupMouseConfirmed, id)
}
