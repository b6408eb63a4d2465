// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package registry

import (
	_ "embed"
	"fmt"

	"github.com/toeirei/keyeditor/core/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/registry.yaml
var defaultData []byte

// SectionKind describes how the options of a section are presented.
type SectionKind string

const (
	KindButtons SectionKind = "buttons"
	KindToggles SectionKind = "toggles"
	KindLinks   SectionKind = "links"
	KindSelect  SectionKind = "select"
)

// Tab is one entry of the popover tab bar.
type Tab struct {
	Content model.ContentBlockID `yaml:"content"`
	Title   string               `yaml:"title"`
	Icon    string               `yaml:"icon"`
}

// Section is a named, ordered list of options inside a content block.
type Section struct {
	ID    string      `yaml:"id"`
	Kind  SectionKind `yaml:"kind"`
	Title string      `yaml:"title"`
	// Search is nil when the section does not override the dropdown default.
	Search  *bool                    `yaml:"search,omitempty"`
	Options []model.OptionDescriptor `yaml:"options"`
}

// SearchEnabled reports whether a dropdown for this section offers search.
func (s Section) SearchEnabled() bool {
	return s.Search == nil || *s.Search
}

// Groups partitions the options by group name.
func (s Section) Groups() []model.OptionGroup {
	return model.GroupOptions(s.Options)
}

// Block is the configuration of one content block.
type Block struct {
	ID       model.ContentBlockID `yaml:"-"`
	Sections []Section            `yaml:"sections"`
}

// Options returns every option of the block in section order.
func (b Block) Options() []model.OptionDescriptor {
	var opts []model.OptionDescriptor
	for _, s := range b.Sections {
		opts = append(opts, s.Options...)
	}
	return opts
}

// Section looks up a section by id.
func (b Block) Section(id string) (Section, bool) {
	for _, s := range b.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func (b Block) clone() Block {
	out := Block{ID: b.ID, Sections: make([]Section, len(b.Sections))}
	for i, s := range b.Sections {
		s.Options = append([]model.OptionDescriptor(nil), s.Options...)
		if s.Search != nil {
			v := *s.Search
			s.Search = &v
		}
		out.Sections[i] = s
	}
	return out
}

type document struct {
	Tabs   []Tab                           `yaml:"tabs"`
	Blocks map[model.ContentBlockID]Block `yaml:"blocks"`
}

// Registry is the immutable lookup table of content blocks.
type Registry struct {
	tabs   []Tab
	blocks map[model.ContentBlockID]Block
}

// Load parses a registry document. Every content block must be present and
// every tab must point at a known block.
func Load(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}

	for id, block := range doc.Blocks {
		if !id.Valid() {
			return nil, fmt.Errorf("registry block %q: %w", id, model.ErrUnknownContentBlock)
		}
		block.ID = id
		doc.Blocks[id] = block
	}
	for _, id := range model.ContentBlocks() {
		if _, ok := doc.Blocks[id]; !ok {
			return nil, fmt.Errorf("registry is missing block %q", id)
		}
	}
	for _, tab := range doc.Tabs {
		if !tab.Content.Valid() {
			return nil, fmt.Errorf("registry tab %q: %w", tab.Content, model.ErrUnknownContentBlock)
		}
	}

	return &Registry{tabs: doc.Tabs, blocks: doc.Blocks}, nil
}

// MustLoad is Load that panics on malformed data.
func MustLoad(data []byte) *Registry {
	r, err := Load(data)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry built from the embedded configuration.
func Default() *Registry {
	return MustLoad(defaultData)
}

// Tabs returns the tab bar entries in display order.
func (r *Registry) Tabs() []Tab {
	return append([]Tab(nil), r.tabs...)
}

// Block returns the configuration of a content block.
func (r *Registry) Block(id model.ContentBlockID) (Block, error) {
	block, ok := r.blocks[id]
	if !ok {
		return Block{}, fmt.Errorf("block %q: %w", id, model.ErrUnknownContentBlock)
	}
	return block.clone(), nil
}

// Has reports whether the registry knows id.
func (r *Registry) Has(id model.ContentBlockID) bool {
	_, ok := r.blocks[id]
	return ok
}
