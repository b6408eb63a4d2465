// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/core/render"
	"github.com/toeirei/keyeditor/internal/logging"
)

// ErrNotDropdown is returned by Dropdown for controls that are not selects.
var ErrNotDropdown = errors.New("control is not a dropdown")

// Controller drives one open popover.
type Controller struct {
	reg       *registry.Registry
	renderer  render.Renderer
	imagesDir string
	formatter render.ResultFormatter

	state    PanelState
	mirror   *Mirror
	controls *ControlSet
	bus      *Bus

	tabs   *region
	active *region
	markup render.Markup

	// Region scoped, nil while their region is not mounted.
	keyGate *Gate
	capture *CaptureToggle
	mouse   *MouseSelector
}

// Option configures a Controller.
type Option func(*Controller)

// WithImagesDir sets the directory image references resolve against.
func WithImagesDir(dir string) Option {
	return func(c *Controller) { c.imagesDir = dir }
}

// New opens a popover on the keypress tab with the layer key set to None.
func New(reg *registry.Registry, renderer render.Renderer, opts ...Option) (*Controller, error) {
	c := &Controller{
		reg:       reg,
		renderer:  renderer,
		imagesDir: render.DefaultImagesDir,
		mirror:    NewMirror(),
		controls:  NewControlSet(),
		bus:       NewBus(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.formatter = render.NewResultFormatter(c.imagesDir)
	c.state = NewPanelState(reg, c.imagesDir)
	c.tabs = c.mountTabs(reg.Tabs())

	if err := c.show(c.state.ActiveContentBlock); err != nil {
		c.unmount(c.tabs)
		return nil, err
	}
	return c, nil
}

// SelectContentBlock switches the popover to block id. Ids the registry does
// not know are ignored.
func (c *Controller) SelectContentBlock(id model.ContentBlockID) error {
	if !id.Valid() || !c.reg.Has(id) {
		logging.Debugf("ignoring unknown content block %q", id)
		return nil
	}
	return c.show(id)
}

// show renders block id and, when that succeeds, replaces the mounted region.
func (c *Controller) show(id model.ContentBlockID) error {
	block, err := c.reg.Block(id)
	if err != nil {
		return err
	}
	markup, err := c.renderer.Render(render.ContentTemplate(id), c.staticContext(block))
	if err != nil {
		logging.Errorf("render %s: %v", id, err)
		return fmt.Errorf("show %s: %w", id, err)
	}

	c.unmount(c.active)
	c.active = nil
	c.state = c.state.WithContentBlock(id)
	c.active = c.mount(block)
	c.markup = markup
	if err := c.mirror.SelectExclusive(GroupTabs, TabControl(id)); err != nil {
		logging.Debugf("block %s has no tab: %v", id, err)
	}
	logging.Debugf("content block %s active, %d bindings", id, c.bus.Len())
	return nil
}

// Render returns the markup of block id populated with registry data only.
// It does not touch the controller state.
func (c *Controller) Render(id model.ContentBlockID) (render.Markup, error) {
	block, err := c.reg.Block(id)
	if err != nil {
		block = registry.Block{ID: id}
	}
	return c.renderer.Render(render.ContentTemplate(id), c.staticContext(block))
}

// RenderTabs renders the static tab bar.
func (c *Controller) RenderTabs() (render.Markup, error) {
	return c.renderer.Render(render.TopTemplate, c.staticContext(registry.Block{}))
}

// Markup returns the markup produced when the active block was selected.
func (c *Controller) Markup() render.Markup { return c.markup }

// View renders the tab bar and the active region with live state markers.
// focus names the control drawn as focused and may be empty.
func (c *Controller) View(focus string) (render.Markup, error) {
	block, err := c.reg.Block(c.state.ActiveContentBlock)
	if err != nil {
		return "", err
	}
	ctx := c.liveContext(block, focus)
	top, err := c.renderer.Render(render.TopTemplate, ctx)
	if err != nil {
		return "", err
	}
	content, err := c.renderer.Render(render.ContentTemplate(block.ID), ctx)
	if err != nil {
		return "", err
	}
	return render.Markup(strings.TrimRight(string(top), "\n") + "\n\n" + string(content)), nil
}

// Dispatch routes ev to the handlers bound to its target. Events on unknown
// or disabled controls are dropped.
func (c *Controller) Dispatch(ev Event) error {
	if !c.controls.Has(ev.Target) {
		logging.Debugf("ignoring %s on unknown control %q", ev.Kind, ev.Target)
		return nil
	}
	if !c.controls.Enabled(ev.Target) {
		logging.Debugf("ignoring %s on disabled control %q", ev.Kind, ev.Target)
		return nil
	}
	_, err := c.bus.Dispatch(ev)
	return err
}

// Close unmounts everything. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.unmount(c.active)
	c.unmount(c.tabs)
	c.active, c.tabs = nil, nil
}

// State returns the current panel state.
func (c *Controller) State() PanelState { return c.state }

// Summary describes the current assignment.
func (c *Controller) Summary() string { return c.state.Summary() }

// Tabs returns the tab bar entries.
func (c *Controller) Tabs() []registry.Tab { return c.reg.Tabs() }

// Mirror exposes the selection mirror.
func (c *Controller) Mirror() *Mirror { return c.mirror }

// Controls exposes the registered controls.
func (c *Controller) Controls() *ControlSet { return c.controls }

// Bus exposes the binding bus.
func (c *Controller) Bus() *Bus { return c.bus }

// KeyGate returns the layer key gate of the keypress region, nil elsewhere.
func (c *Controller) KeyGate() *Gate { return c.keyGate }

// Capture returns the capture toggle of the keypress region, nil elsewhere.
func (c *Controller) Capture() *CaptureToggle { return c.capture }

// MouseSelector returns the selector of the mouse region, nil elsewhere.
func (c *Controller) MouseSelector() *MouseSelector { return c.mouse }

// Enabled reports whether control id can be interacted with.
func (c *Controller) Enabled(id string) bool { return c.controls.Enabled(id) }

// Focusable returns the region controls a cursor can land on, in display
// order. Tabs and the buttons of hidden mouse panels are left out.
func (c *Controller) Focusable() []string {
	var out []string
	for _, id := range c.controls.IDs() {
		kind, rest := splitControl(id)
		switch kind {
		case "tab":
			continue
		case "mouse-config":
			t, _, _ := strings.Cut(rest, ":")
			if c.mouse == nil || !c.mouse.Visible(model.MouseActionTypeID(t)) {
				continue
			}
		}
		out = append(out, id)
	}
	return out
}

// Dropdown describes the select control id for the dropdown widget.
type Dropdown struct {
	Control  string
	Section  string
	Title    string
	Options  []model.OptionDescriptor
	Selected string
	Config   render.DropdownConfig
}

// Dropdown returns the options and widget configuration of select control id.
func (c *Controller) Dropdown(id string) (Dropdown, error) {
	sectionID, ok := IsSelectControl(id)
	if !ok || !c.controls.Has(id) {
		return Dropdown{}, fmt.Errorf("dropdown %q: %w", id, ErrNotDropdown)
	}
	block, err := c.reg.Block(c.state.ActiveContentBlock)
	if err != nil {
		return Dropdown{}, err
	}
	sec, ok := block.Section(sectionID)
	if !ok {
		return Dropdown{}, fmt.Errorf("dropdown %q: %w", id, ErrNotDropdown)
	}
	selected, _ := c.state.Selection(sectionID)
	return Dropdown{
		Control:  id,
		Section:  sectionID,
		Title:    sec.Title,
		Options:  sec.Options,
		Selected: selected,
		Config: render.DropdownConfig{
			SearchEnabled:   sec.SearchEnabled() && block.ID != model.BlockLayer,
			ResultFormatter: c.formatter,
		},
	}, nil
}

func (c *Controller) imagePath(name string) string {
	return render.ImagePath(c.imagesDir, name)
}
