// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package render

import "github.com/toeirei/keyeditor/core/model"

// DefaultImagesDir is the directory image references resolve against.
const DefaultImagesDir = "images"

// ImagePath joins an image reference onto dir. An empty name yields "".
func ImagePath(dir, name string) string {
	if name == "" {
		return ""
	}
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Fragment is the display form of one dropdown entry.
type Fragment struct {
	Text          string
	AlternateName string
	Abbrev        string
	// ImageRef is the resolved abbreviation image, empty when the option has none.
	ImageRef string
}

func (f Fragment) String() string {
	s := f.Text
	if f.AlternateName != "" {
		s += " (" + f.AlternateName + ")"
	}
	if f.ImageRef != "" {
		s = "[" + f.Abbrev + "] " + s
	}
	return s
}

// ResultFormatter renders a dropdown entry.
type ResultFormatter func(model.OptionDescriptor) Fragment

// NewResultFormatter returns a formatter that resolves abbreviation images
// against imagesDir.
func NewResultFormatter(imagesDir string) ResultFormatter {
	return func(opt model.OptionDescriptor) Fragment {
		f := Fragment{Text: opt.Label, AlternateName: opt.AlternateName}
		if opt.AbbrevImageRef != "" {
			f.Abbrev = opt.Abbrev
			f.ImageRef = ImagePath(imagesDir, opt.AbbrevImageRef)
		}
		return f
	}
}

// FormatResult formats opt against the default images directory.
func FormatResult(opt model.OptionDescriptor) Fragment {
	return NewResultFormatter(DefaultImagesDir)(opt)
}

// DropdownConfig is handed to the dropdown widget of a select control.
type DropdownConfig struct {
	SearchEnabled   bool
	ResultFormatter ResultFormatter
}
