// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// OptionDescriptor is one selectable entry of a content block.
type OptionDescriptor struct {
	Value          string `yaml:"value"`
	Label          string `yaml:"label"`
	AlternateName  string `yaml:"alternateName,omitempty"`
	GroupName      string `yaml:"groupName,omitempty"`
	ImageRef       string `yaml:"image,omitempty"`
	Abbrev         string `yaml:"abbrev,omitempty"`
	AbbrevImageRef string `yaml:"abbrevImage,omitempty"`
	// Engaged marks the initial state of toggle options (modifier buttons).
	Engaged bool `yaml:"engaged,omitempty"`
}

// OptionGroup is a run of options sharing a group name.
type OptionGroup struct {
	Name    string
	Options []OptionDescriptor
}

// GroupOptions partitions opts by GroupName. Groups appear in the order their
// name is first seen and options keep their relative order.
func GroupOptions(opts []OptionDescriptor) []OptionGroup {
	var groups []OptionGroup
	index := make(map[string]int)
	for _, opt := range opts {
		i, ok := index[opt.GroupName]
		if !ok {
			i = len(groups)
			index[opt.GroupName] = i
			groups = append(groups, OptionGroup{Name: opt.GroupName})
		}
		groups[i].Options = append(groups[i].Options, opt)
	}
	return groups
}

// FindOption returns the option with the given value.
func FindOption(opts []OptionDescriptor, value string) (OptionDescriptor, bool) {
	for _, opt := range opts {
		if opt.Value == value {
			return opt, true
		}
	}
	return OptionDescriptor{}, false
}
