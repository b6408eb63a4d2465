// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"fmt"
	"slices"
	"strings"

	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/internal/logging"
)

// region is everything one mounted part of the popover added to the shared
// controller structures. Unmounting removes exactly that.
type region struct {
	name     string
	subs     []Subscription
	controls []string
	groups   []GroupID
	toggles  []string
	cleanup  []func()
}

func (c *Controller) register(r *region, ids ...string) {
	for _, id := range ids {
		c.controls.Register(id)
		r.controls = append(r.controls, id)
	}
}

func (c *Controller) define(r *region, g GroupID, members ...string) {
	c.mirror.Define(g, members...)
	r.groups = append(r.groups, g)
}

func (c *Controller) defineToggle(r *region, member string, engaged bool) {
	c.mirror.DefineToggle(member, engaged)
	r.toggles = append(r.toggles, member)
}

// on subscribes h to target for the lifetime of r.
func (c *Controller) on(r *region, target string, h Handler) {
	r.subs = append(r.subs, c.bus.Subscribe(target, h))
}

func (c *Controller) unmount(r *region) {
	if r == nil {
		return
	}
	for _, sub := range r.subs {
		c.bus.Unsubscribe(sub)
	}
	for _, id := range r.controls {
		c.controls.Unregister(id)
	}
	for _, g := range r.groups {
		c.mirror.Drop(g)
	}
	for _, t := range r.toggles {
		c.mirror.DropToggle(t)
	}
	for _, fn := range slices.Backward(r.cleanup) {
		fn()
	}
	logging.Debugf("unmounted region %s (%d bindings)", r.name, len(r.subs))
}

// onClick binds a click-only handler.
func (c *Controller) onClick(r *region, target string, fn func() error) {
	c.on(r, target, func(ev Event) error {
		if ev.Kind != EventClick {
			return nil
		}
		return fn()
	})
}

type selectHooks struct {
	selected func(model.OptionDescriptor)
	opened   func(open bool)
}

// bindSelect registers the dropdown of a section and stores its selection in
// the panel state.
func (c *Controller) bindSelect(r *region, block registry.Block, sectionID string, hooks selectHooks) {
	sec, ok := block.Section(sectionID)
	if !ok {
		return
	}
	id := SelectControl(sectionID)
	c.register(r, id)
	c.on(r, id, func(ev Event) error {
		switch ev.Kind {
		case EventSelect:
			opt, ok := model.FindOption(sec.Options, ev.Value)
			if !ok {
				return fmt.Errorf("select %q: unknown option %q", sectionID, ev.Value)
			}
			c.state = c.state.WithSelection(sectionID, opt.Value)
			if hooks.selected != nil {
				hooks.selected(opt)
			}
		case EventOpen, EventClose:
			if hooks.opened != nil {
				hooks.opened(ev.Kind == EventOpen)
			}
		}
		return nil
	})
}

func (c *Controller) mountTabs(tabs []registry.Tab) *region {
	r := &region{name: "tabs"}
	members := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		id := TabControl(tab.Content)
		members = append(members, id)
		c.register(r, id)
		content := tab.Content
		c.onClick(r, id, func() error { return c.SelectContentBlock(content) })
	}
	c.define(r, GroupTabs, members...)
	return r
}

var mounts = map[model.ContentBlockID]func(*Controller, *region, registry.Block){
	model.BlockKeypress:     (*Controller).mountKeypress,
	model.BlockLayer:        (*Controller).mountLayer,
	model.BlockMouse:        (*Controller).mountMouse,
	model.BlockMacro:        (*Controller).mountMacro,
	model.BlockSwitchKeymap: (*Controller).mountKeymap,
	model.BlockNone:         func(*Controller, *region, registry.Block) {},
}

func (c *Controller) mount(block registry.Block) *region {
	r := &region{name: string(block.ID)}
	if fn, ok := mounts[block.ID]; ok {
		fn(c, r, block)
	}
	logging.Debugf("mounted region %s (%d bindings)", r.name, len(r.subs))
	return r
}

func (c *Controller) mountKeypress(r *region, block registry.Block) {
	var layerKeys []string
	if sec, ok := block.Section("layers"); ok {
		for _, opt := range sec.Options {
			layerKeys = append(layerKeys, LayerKeyControl(model.LayerKeyID(opt.Value)))
		}
	}
	c.register(r, layerKeys...)
	c.define(r, GroupLayerKey, layerKeys...)

	var mods []string
	for _, sid := range []string{"modifiers.left", "modifiers.right"} {
		sec, ok := block.Section(sid)
		if !ok {
			continue
		}
		for _, opt := range sec.Options {
			m := model.ModifierID(opt.Value)
			id := ModifierControl(m)
			mods = append(mods, id)
			c.register(r, id)
			c.defineToggle(r, id, c.state.ActiveModifiers.Has(m))
			c.onClick(r, id, func() error {
				engaged, err := c.mirror.Toggle(id)
				if err != nil {
					return err
				}
				c.state = c.state.WithModifier(m, engaged)
				return nil
			})
		}
	}

	c.register(r, CaptureControl)
	c.bindSelect(r, block, "scancode", selectHooks{})
	c.bindSelect(r, block, "secondaryRole", selectHooks{})

	scancode, role := SelectControl("scancode"), SelectControl("secondaryRole")
	c.keyGate = NewGate(gateLayerKey, c.controls, slices.Concat(mods, []string{CaptureControl, scancode, role})...)
	c.capture = NewCaptureToggle(c.controls, slices.Concat(mods, []string{scancode})...)
	r.cleanup = append(r.cleanup, func() {
		c.keyGate = nil
		c.capture = nil
	})

	if err := c.mirror.SelectExclusive(GroupLayerKey, LayerKeyControl(c.state.ActiveLayerKey)); err != nil {
		logging.Warnf("restore layer key: %v", err)
	}
	c.keyGate.SetGated(c.state.ControlsGated)
	c.capture.Set(c.state.Capture)

	for _, id := range layerKeys {
		_, rest := splitControl(id)
		k := model.LayerKeyID(rest)
		c.onClick(r, id, func() error {
			if err := c.mirror.SelectExclusive(GroupLayerKey, id); err != nil {
				return err
			}
			c.state = c.state.WithLayerKey(k)
			c.keyGate.SetGated(c.state.ControlsGated)
			return nil
		})
	}
	c.onClick(r, CaptureControl, func() error {
		c.state = c.state.WithCaptureToggled()
		c.capture.Set(c.state.Capture)
		return nil
	})
}

func (c *Controller) mountLayer(r *region, block registry.Block) {
	c.bindSelect(r, block, "layerMode", selectHooks{
		selected: func(opt model.OptionDescriptor) {
			c.state = c.state.WithLayerHelp(opt.Value == "toggle")
		},
	})
	c.bindSelect(r, block, "layerTarget", selectHooks{})
}

func (c *Controller) mountMouse(r *region, block registry.Block) {
	types := model.MouseActionTypes()
	for _, t := range types {
		c.register(r, MouseTypeControl(t))
	}
	for _, t := range types {
		for _, b := range MouseButtons(t) {
			c.register(r, MouseConfigControl(t, b))
		}
	}
	c.mouse = NewMouseSelector(c.mirror)
	r.groups = append(r.groups, GroupMouseType, GroupMouseConfig, GroupMouseConfirmed)
	r.cleanup = append(r.cleanup, func() { c.mouse = nil })

	if err := c.mouse.SelectActionType(c.state.MouseAction); err != nil {
		logging.Warnf("restore mouse action: %v", err)
	}
	if c.state.MouseConfig != "" {
		t := c.state.ConfirmedMouseAction
		_, button, _ := strings.Cut(c.state.MouseConfig, ":")
		if err := c.mirror.SelectExclusive(GroupMouseConfig, MouseConfigControl(t, button)); err != nil {
			logging.Warnf("restore mouse config: %v", err)
		}
		if err := c.mirror.SelectExclusive(GroupMouseConfirmed, MouseTypeControl(t)); err != nil {
			logging.Warnf("restore confirmed mouse action: %v", err)
		}
	}

	for _, t := range types {
		c.onClick(r, MouseTypeControl(t), func() error {
			if err := c.mouse.SelectActionType(t); err != nil {
				return err
			}
			c.state = c.state.WithMouseAction(t)
			return nil
		})
		for _, b := range MouseButtons(t) {
			c.onClick(r, MouseConfigControl(t, b), func() error {
				if !c.mouse.Visible(t) {
					logging.Debugf("ignoring config %s of hidden mouse panel %s", b, t)
					return nil
				}
				if err := c.mouse.SelectConfig(b); err != nil {
					return err
				}
				c.state = c.state.WithMouseConfig(b)
				return nil
			})
		}
	}
}

func (c *Controller) mountMacro(r *region, block registry.Block) {
	c.bindSelect(r, block, "macro", selectHooks{})
}

func (c *Controller) mountKeymap(r *region, block registry.Block) {
	c.bindSelect(r, block, "keymap", selectHooks{
		selected: func(opt model.OptionDescriptor) {
			c.state = c.state.WithPreviewImage(c.imagePath(opt.ImageRef))
		},
		opened: func(open bool) {
			c.state = c.state.WithPreviewDimmed(open)
		},
	})
}
