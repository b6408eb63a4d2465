// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package registry

import (
	"errors"
	"testing"

	"github.com/toeirei/keyeditor/core/model"
)

func TestDefault_HasEveryBlock(t *testing.T) {
	r := Default()
	for _, id := range model.ContentBlocks() {
		if !r.Has(id) {
			t.Fatalf("default registry is missing %q", id)
		}
	}
	if got := len(r.Tabs()); got != len(model.ContentBlocks()) {
		t.Fatalf("expected %d tabs, got %d", len(model.ContentBlocks()), got)
	}
	if r.Tabs()[0].Content != model.BlockKeypress {
		t.Fatalf("first tab should be keypress, got %q", r.Tabs()[0].Content)
	}
}

func TestDefault_MacroEntries(t *testing.T) {
	block, err := Default().Block(model.BlockMacro)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	want := []string{"Select macro", "Latex custom equation", "Process shops xml"}
	opts := block.Options()
	if len(opts) != len(want) {
		t.Fatalf("expected %d macros, got %d", len(want), len(opts))
	}
	for i, w := range want {
		if opts[i].Label != w {
			t.Errorf("macro %d: got %q want %q", i, opts[i].Label, w)
		}
	}
}

func TestDefault_ScancodeGroupsKeepOrder(t *testing.T) {
	block, _ := Default().Block(model.BlockKeypress)
	section, ok := block.Section("scancode")
	if !ok {
		t.Fatal("missing scancode section")
	}
	groups := section.Groups()
	want := []string{"Alphabet", "Number Row", "Whitespace", "Punctuation"}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, w := range want {
		if groups[i].Name != w {
			t.Errorf("group %d: got %q want %q", i, groups[i].Name, w)
		}
	}
	if groups[0].Options[0].Value != "A" || groups[0].Options[25].Value != "Z" {
		t.Errorf("alphabet out of order: %q..%q", groups[0].Options[0].Value, groups[0].Options[25].Value)
	}
	ret, _ := model.FindOption(section.Options, "Return")
	if ret.AlternateName != "Enter" {
		t.Errorf("Return alternate name: got %q", ret.AlternateName)
	}
}

func TestDefault_LayerSectionsDisableSearch(t *testing.T) {
	block, _ := Default().Block(model.BlockLayer)
	for _, s := range block.Sections {
		if s.SearchEnabled() {
			t.Errorf("section %q should not offer search", s.ID)
		}
	}
	keypress, _ := Default().Block(model.BlockKeypress)
	scancode, _ := keypress.Section("scancode")
	if !scancode.SearchEnabled() {
		t.Error("scancode section should offer search")
	}
}

func TestBlock_ReturnsCopies(t *testing.T) {
	r := Default()
	b1, _ := r.Block(model.BlockMacro)
	b1.Sections[0].Options[0].Label = "mutated"
	b2, _ := r.Block(model.BlockMacro)
	if b2.Sections[0].Options[0].Label == "mutated" {
		t.Fatal("registry data was mutated through a returned block")
	}
}

func TestBlock_Unknown(t *testing.T) {
	_, err := Default().Block("bogus")
	if !errors.Is(err, model.ErrUnknownContentBlock) {
		t.Fatalf("expected ErrUnknownContentBlock, got %v", err)
	}
}

func TestLoad_RejectsMissingBlocks(t *testing.T) {
	data := []byte("tabs: []\nblocks:\n  keypress:\n    sections: []\n")
	if _, err := Load(data); err == nil {
		t.Fatal("expected error for incomplete registry")
	}
}

func TestLoad_RejectsUnknownTab(t *testing.T) {
	data := []byte(`tabs:
  - content: nope
blocks:
  keypress: {sections: []}
  layer: {sections: []}
  mouse: {sections: []}
  macro: {sections: []}
  switchKeymap: {sections: []}
  none: {sections: []}
`)
	_, err := Load(data)
	if !errors.Is(err, model.ErrUnknownContentBlock) {
		t.Fatalf("expected ErrUnknownContentBlock, got %v", err)
	}
}
