// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/core/registry"
	"github.com/toeirei/keyeditor/core/render"
	"github.com/toeirei/keyeditor/core/render/mocks"
	"github.com/toeirei/keyeditor/internal/logging"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	c, err := New(registry.Default(), render.MustNew(), WithImagesDir("images"))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func dispatch(t *testing.T, c *Controller, evs ...Event) {
	t.Helper()
	for _, ev := range evs {
		require.NoError(t, c.Dispatch(ev))
	}
}

func keyDependents() []string {
	var ids []string
	for _, m := range model.Modifiers() {
		ids = append(ids, ModifierControl(m))
	}
	return append(ids, CaptureControl, SelectControl("scancode"), SelectControl("secondaryRole"))
}

func TestController_InitialState(t *testing.T) {
	c := newController(t)
	s := c.State()

	require.Equal(t, model.BlockKeypress, s.ActiveContentBlock)
	require.Equal(t, model.LayerNone, s.ActiveLayerKey)
	require.True(t, s.ControlsGated)
	require.True(t, c.Mirror().IsSelected(GroupTabs, TabControl(model.BlockKeypress)))
	require.True(t, c.Mirror().IsSelected(GroupLayerKey, LayerKeyControl(model.LayerNone)))
	require.True(t, c.KeyGate().Gated())
	for _, id := range keyDependents() {
		require.False(t, c.Enabled(id), "%s should start disabled", id)
	}
	for _, k := range model.LayerKeys() {
		require.True(t, c.Enabled(LayerKeyControl(k)), "layer keys are never gated")
	}
}

func TestController_LayerKeyNoneGatesKeySetup(t *testing.T) {
	c := newController(t)

	dispatch(t, c, Click(LayerKeyControl(model.LayerMod)))
	require.False(t, c.State().ControlsGated)
	require.False(t, c.KeyGate().Gated())
	for _, id := range keyDependents() {
		require.True(t, c.Enabled(id), "%s should be enabled", id)
	}

	dispatch(t, c, Click(LayerKeyControl(model.LayerFn)), Click(LayerKeyControl(model.LayerNone)))
	require.True(t, c.State().ControlsGated)
	require.Equal(t, model.LayerNone, c.State().ActiveLayerKey)
	for _, id := range keyDependents() {
		require.False(t, c.Enabled(id))
	}
}

func TestController_LayerKeysAreExclusive(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(LayerKeyControl(model.LayerMouse)), Click(LayerKeyControl(model.LayerFn)))

	active := 0
	for _, k := range model.LayerKeys() {
		if c.Mirror().IsSelected(GroupLayerKey, LayerKeyControl(k)) {
			active++
		}
	}
	require.Equal(t, 1, active)
	require.Equal(t, model.LayerFn, c.State().ActiveLayerKey)
}

func TestController_EventsOnDisabledControlsAreIgnored(t *testing.T) {
	c := newController(t)
	before := c.State()

	dispatch(t, c,
		Click(ModifierControl(model.RCtrl)),
		Click(CaptureControl),
		Select(SelectControl("scancode"), "Q"),
	)
	require.Equal(t, before.ActiveModifiers, c.State().ActiveModifiers)
	require.Equal(t, CaptureIdle, c.State().Capture)
	v, _ := c.State().Selection("scancode")
	require.Equal(t, "A", v)
}

func TestController_ModifiersToggleIndependently(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(LayerKeyControl(model.LayerMod)))

	dispatch(t, c, Click(ModifierControl(model.RCtrl)), Click(ModifierControl(model.LShift)))
	require.Equal(t, []model.ModifierID{model.LAlt, model.RCtrl}, c.State().ActiveModifiers.List())
	require.True(t, c.Mirror().Engaged(ModifierControl(model.RCtrl)))
	require.False(t, c.Mirror().Engaged(ModifierControl(model.LShift)))
	require.True(t, c.Mirror().Engaged(ModifierControl(model.LAlt)))
}

func TestController_CaptureToggle(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(LayerKeyControl(model.LayerMod)), Click(CaptureControl))

	require.Equal(t, CaptureCapturing, c.State().Capture)
	require.False(t, c.Enabled(ModifierControl(model.LCtrl)))
	require.False(t, c.Enabled(SelectControl("scancode")))
	require.True(t, c.Enabled(SelectControl("secondaryRole")))
	require.True(t, c.Enabled(CaptureControl))

	view, err := c.View("")
	require.NoError(t, err)
	require.Contains(t, string(view), "[*Stop capturing]")

	dispatch(t, c, Click(CaptureControl))
	require.Equal(t, CaptureIdle, c.State().Capture)
	for _, id := range keyDependents() {
		require.True(t, c.Enabled(id))
	}
}

func TestController_CaptureSurvivesGateRoundTrip(t *testing.T) {
	c := newController(t)
	dispatch(t, c,
		Click(LayerKeyControl(model.LayerMod)),
		Click(CaptureControl),
		Click(LayerKeyControl(model.LayerNone)),
		Click(LayerKeyControl(model.LayerFn)),
	)
	require.Equal(t, CaptureCapturing, c.State().Capture)
	require.False(t, c.Enabled(ModifierControl(model.LShift)), "capture still holds the modifiers")
	require.True(t, c.Enabled(SelectControl("secondaryRole")))
}

func TestController_SelectContentBlockUnknownIsNoop(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(LayerKeyControl(model.LayerMod)))
	before := c.State()
	bindings := c.Bus().Len()

	require.NoError(t, c.SelectContentBlock("bogus"))
	require.Equal(t, before, c.State())
	require.Equal(t, bindings, c.Bus().Len())
	require.True(t, c.Mirror().IsSelected(GroupTabs, TabControl(model.BlockKeypress)))
}

func TestController_TabClickSwitchesRegion(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(TabControl(model.BlockMouse)))

	require.Equal(t, model.BlockMouse, c.State().ActiveContentBlock)
	require.True(t, c.Mirror().IsSelected(GroupTabs, TabControl(model.BlockMouse)))
	require.False(t, c.Controls().Has(ModifierControl(model.LShift)), "keypress controls are unmounted")
	require.Nil(t, c.KeyGate())
	require.NotNil(t, c.MouseSelector())
}

func TestController_NoHandlerLeakAcrossTabSwitches(t *testing.T) {
	c := newController(t)
	tabBindings := len(c.Tabs())

	regionBindings := map[model.ContentBlockID]int{}
	for _, id := range model.ContentBlocks() {
		require.NoError(t, c.SelectContentBlock(id))
		regionBindings[id] = c.Bus().Len() - tabBindings
	}

	for i := 0; i < 25; i++ {
		for _, id := range model.ContentBlocks() {
			dispatch(t, c, Click(TabControl(id)))
			require.Equal(t, tabBindings+regionBindings[id], c.Bus().Len(), "after switching to %s", id)
		}
	}

	// Exactly one handler fires per click after many remounts.
	require.NoError(t, c.SelectContentBlock(model.BlockKeypress))
	require.Equal(t, 1, c.Bus().Bound(LayerKeyControl(model.LayerMod)))
	dispatch(t, c, Click(LayerKeyControl(model.LayerMod)), Click(ModifierControl(model.RAlt)))
	require.True(t, c.State().ActiveModifiers.Has(model.RAlt), "a leaked duplicate handler would toggle twice")
}

func TestController_StatePersistsAcrossTabs(t *testing.T) {
	c := newController(t)
	dispatch(t, c,
		Click(LayerKeyControl(model.LayerFn)),
		Click(ModifierControl(model.RShift)),
		Click(TabControl(model.BlockMacro)),
		Click(TabControl(model.BlockKeypress)),
	)
	require.True(t, c.Mirror().IsSelected(GroupLayerKey, LayerKeyControl(model.LayerFn)))
	require.True(t, c.Mirror().Engaged(ModifierControl(model.RShift)))
	require.True(t, c.Enabled(ModifierControl(model.RShift)))
}

func TestController_MouseActionSelector(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(TabControl(model.BlockMouse)))
	ms := c.MouseSelector()

	require.True(t, ms.Visible(model.MouseMove))
	dispatch(t, c, Click(MouseTypeControl(model.MouseScroll)))
	for _, mt := range model.MouseActionTypes() {
		require.Equal(t, mt == model.MouseScroll, ms.Visible(mt), "visible %s", mt)
	}

	dispatch(t, c, Click(MouseConfigControl(model.MouseScroll, "up")))
	confirmed, ok := ms.Confirmed()
	require.True(t, ok)
	require.Equal(t, model.MouseScroll, confirmed)

	dispatch(t, c, Click(MouseTypeControl(model.MouseClick)))
	confirmed, _ = ms.Confirmed()
	require.Equal(t, model.MouseScroll, confirmed, "editing another type keeps the confirmed marker")

	// Buttons of the hidden panel do nothing.
	dispatch(t, c, Click(MouseConfigControl(model.MouseScroll, "down")))
	require.Equal(t, "scroll:up", c.State().MouseConfig)

	dispatch(t, c, Click(MouseConfigControl(model.MouseClick, "middle")))
	confirmed, _ = ms.Confirmed()
	require.Equal(t, model.MouseClick, confirmed)
	require.False(t, c.Mirror().IsSelected(GroupMouseConfig, MouseConfigControl(model.MouseScroll, "up")))

	view, err := c.View("")
	require.NoError(t, err)
	require.Contains(t, string(view), "[*+Click]")
	require.Contains(t, string(view), "[*Middle]")
	require.NotContains(t, string(view), "Accelerate")
}

func TestController_Focusable(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(TabControl(model.BlockMouse)), Click(MouseTypeControl(model.MouseSpeed)))

	focus := c.Focusable()
	require.Contains(t, focus, MouseConfigControl(model.MouseSpeed, "accelerate"))
	require.NotContains(t, focus, MouseConfigControl(model.MouseMove, "up"))
	for _, id := range focus {
		require.False(t, strings.HasPrefix(id, "tab:"))
	}
}

func TestController_LayerHelpFollowsMode(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(TabControl(model.BlockLayer)))
	require.False(t, c.State().LayerHelpVisible)

	dispatch(t, c, Select(SelectControl("layerMode"), "toggle"))
	require.True(t, c.State().LayerHelpVisible)
	view, err := c.View("")
	require.NoError(t, err)
	require.Contains(t, string(view), "Toggle mode keeps the layer active")

	dispatch(t, c, Select(SelectControl("layerMode"), "hold"))
	require.False(t, c.State().LayerHelpVisible)
}

func TestController_KeymapPreview(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(TabControl(model.BlockSwitchKeymap)))
	id := SelectControl("keymap")

	dispatch(t, c, Open(id))
	require.True(t, c.State().PreviewDimmed)
	dispatch(t, c, Select(id, "Dvorak"), Close(id))
	require.False(t, c.State().PreviewDimmed)
	require.Equal(t, "images/base-layer--dvorak.svg", c.State().PreviewImage)

	view, err := c.View(id)
	require.NoError(t, err)
	require.Contains(t, string(view), ">[[DVR] Dvorak ▾]")
	require.Contains(t, string(view), "images/base-layer--dvorak.svg")
}

func TestController_SelectUnknownOption(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(TabControl(model.BlockMacro)))
	err := c.Dispatch(Select(SelectControl("macro"), "rm -rf"))
	require.Error(t, err)
	v, _ := c.State().Selection("macro")
	require.Equal(t, "Select macro", v)
}

func TestController_Dropdown(t *testing.T) {
	c := newController(t)

	dd, err := c.Dropdown(SelectControl("scancode"))
	require.NoError(t, err)
	require.True(t, dd.Config.SearchEnabled)
	require.Equal(t, "A", dd.Selected)
	ret, ok := model.FindOption(dd.Options, "Return")
	require.True(t, ok)
	require.Equal(t, "Return (Enter)", dd.Config.ResultFormatter(ret).String())

	_, err = c.Dropdown(LayerKeyControl(model.LayerMod))
	require.ErrorIs(t, err, ErrNotDropdown)

	dispatch(t, c, Click(TabControl(model.BlockLayer)))
	for _, sec := range []string{"layerMode", "layerTarget"} {
		dd, err := c.Dropdown(SelectControl(sec))
		require.NoError(t, err)
		require.False(t, dd.Config.SearchEnabled, "search is off for %s", sec)
	}
	_, err = c.Dropdown(SelectControl("scancode"))
	require.ErrorIs(t, err, ErrNotDropdown, "scancode is not mounted on the layer tab")
}

// expectedTokens lists how each registry option appears in static markup.
func expectedTokens(block registry.Block) (tokens []string, selectOptions int) {
	for _, sec := range block.Sections {
		for _, opt := range sec.Options {
			if sec.Kind == registry.KindSelect {
				tokens = append(tokens, "    - "+render.FormatResult(opt).String()+"\n")
				selectOptions++
				continue
			}
			tokens = append(tokens, "["+opt.Label+"]")
		}
	}
	return tokens, selectOptions
}

func TestController_RenderListsRegistryOptionsInOrder(t *testing.T) {
	c := newController(t)
	reg := registry.Default()

	for _, id := range model.ContentBlocks() {
		block, err := reg.Block(id)
		require.NoError(t, err)

		require.NoError(t, c.SelectContentBlock(id))
		markup, err := c.Render(id)
		require.NoError(t, err)
		require.Equal(t, c.Markup(), markup, "Render(%s) must match the markup shown on select", id)

		tokens, selects := expectedTokens(block)
		rest := string(markup)
		for _, tok := range tokens {
			i := strings.Index(rest, tok)
			require.GreaterOrEqual(t, i, 0, "block %s: %q missing or out of order", id, tok)
			rest = rest[i+len(tok):]
		}

		listed := 0
		for _, line := range strings.Split(string(markup), "\n") {
			if strings.HasPrefix(line, "    - ") {
				listed++
			}
		}
		require.Equal(t, selects, listed, "block %s lists exactly its dropdown options", id)
	}
}

func TestController_RenderIsPure(t *testing.T) {
	c := newController(t)
	dispatch(t, c, Click(LayerKeyControl(model.LayerMod)))
	before := c.State()
	bindings := c.Bus().Len()

	_, err := c.Render(model.BlockMouse)
	require.NoError(t, err)
	require.Equal(t, before, c.State())
	require.Equal(t, bindings, c.Bus().Len())
}

func TestController_RenderUnknownTemplate(t *testing.T) {
	c := newController(t)
	_, err := c.Render("bogus")
	require.ErrorIs(t, err, model.ErrUnknownTemplate)
}

func TestController_ViewMarkers(t *testing.T) {
	c := newController(t)
	view, err := c.View(LayerKeyControl(model.LayerFn))
	require.NoError(t, err)
	out := string(view)

	require.Contains(t, out, "[*⌨ Keypress]")
	require.Contains(t, out, "[*None]")
	require.Contains(t, out, ">[Fn]")
	require.Contains(t, out, "[*-LShift]")
	require.Contains(t, out, "[-RCtrl]")
	require.Contains(t, out, "Key setup is disabled")
	require.Contains(t, out, "[-A ▾]")
	require.NotContains(t, out, "    - B", "the live view collapses dropdowns")

	dispatch(t, c, Click(LayerKeyControl(model.LayerMod)))
	view, err = c.View("")
	require.NoError(t, err)
	require.NotContains(t, string(view), "Key setup is disabled")
	require.Contains(t, string(view), "[*LShift]")
}

func TestController_RenderFailureKeepsRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	gomock.InOrder(
		r.EXPECT().Render(render.ContentTemplate(model.BlockKeypress), gomock.Any()).Return(render.Markup("keypress"), nil),
		r.EXPECT().Render(render.ContentTemplate(model.BlockLayer), gomock.Any()).
			Return(render.Markup(""), model.ErrUnknownTemplate),
	)

	c, err := New(registry.Default(), r)
	require.NoError(t, err)
	require.Equal(t, render.Markup("keypress"), c.Markup())
	bindings := c.Bus().Len()

	err = c.SelectContentBlock(model.BlockLayer)
	require.True(t, errors.Is(err, model.ErrUnknownTemplate))
	require.Equal(t, model.BlockKeypress, c.State().ActiveContentBlock)
	require.Equal(t, bindings, c.Bus().Len())
	require.True(t, c.Controls().Has(LayerKeyControl(model.LayerMod)))
}

func TestController_NewPropagatesRenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	r.EXPECT().Render(gomock.Any(), gomock.Any()).Return(render.Markup(""), model.ErrUnknownTemplate)

	_, err := New(registry.Default(), r)
	require.ErrorIs(t, err, model.ErrUnknownTemplate)
}

func TestController_CloseUnmountsEverything(t *testing.T) {
	c, err := New(registry.Default(), render.MustNew())
	require.NoError(t, err)
	c.Close()

	require.Zero(t, c.Bus().Len())
	require.Zero(t, c.Controls().Len())
	groups, toggles := c.Mirror().Len()
	require.Zero(t, groups)
	require.Zero(t, toggles)
	require.NoError(t, c.Dispatch(Click(TabControl(model.BlockMouse))))
	require.Equal(t, model.BlockKeypress, c.State().ActiveContentBlock)
}

func TestController_MouseRestoreLogsStaleConfig(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.L
	logging.L = clog.New(&buf)
	defer func() { logging.L = prev }()

	c := newController(t)
	c.state = c.state.WithMouseAction(model.MouseClick).WithMouseConfig("bogus")
	dispatch(t, c, Click(TabControl(model.BlockMouse)))

	require.Equal(t, model.BlockMouse, c.State().ActiveContentBlock)
	_, ok := c.Mirror().Selected(GroupMouseConfig)
	require.False(t, ok)
	require.Contains(t, buf.String(), "restore mouse config")
}

func TestController_RenderTabsIsStatic(t *testing.T) {
	c := newController(t)
	out, err := c.RenderTabs()
	require.NoError(t, err)
	require.Contains(t, string(out), "[⌨ Keypress] [❐ Layer]")
	require.NotContains(t, string(out), "*")
}
