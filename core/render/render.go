// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package render turns content block data into popover markup.
//
// Markup is plain text. Controls are written as bracketed labels carrying
// state markers: "*" selected or engaged, "+" confirmed, "-" disabled. A
// leading ">" marks the focused control.
package render

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_renderer.go -package=mocks . Renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/toeirei/keyeditor/core/model"
	"github.com/toeirei/keyeditor/internal/i18n"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Markup is rendered popover text.
type Markup string

func (m Markup) String() string { return string(m) }

// Renderer resolves a template id and executes it over data.
type Renderer interface {
	Render(templateID string, data any) (Markup, error)
}

// TopTemplate renders the tab bar.
const TopTemplate = "top"

// ContentTemplate returns the template id of a content block.
func ContentTemplate(id model.ContentBlockID) string {
	return "content." + string(id)
}

type options struct {
	imagesDir string
	fsys      fs.FS
	patterns  []string
}

// Option configures a TemplateRenderer.
type Option func(*options)

// WithImagesDir sets the base directory of image references.
func WithImagesDir(dir string) Option {
	return func(o *options) { o.imagesDir = dir }
}

// WithTemplates replaces the embedded template set.
func WithTemplates(fsys fs.FS, patterns ...string) Option {
	return func(o *options) {
		o.fsys = fsys
		o.patterns = patterns
	}
}

// TemplateRenderer is a Renderer backed by text/template.
type TemplateRenderer struct {
	tmpl      *template.Template
	formatter ResultFormatter
}

// New parses the template set.
func New(opts ...Option) (*TemplateRenderer, error) {
	o := options{
		imagesDir: DefaultImagesDir,
		fsys:      templateFS,
		patterns:  []string{"templates/*.tmpl"},
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &TemplateRenderer{formatter: NewResultFormatter(o.imagesDir)}
	funcs := template.FuncMap{
		"T":      i18n.T,
		"format": func(opt model.OptionDescriptor) string { return r.formatter(opt).String() },
		"image":  func(name string) string { return ImagePath(o.imagesDir, name) },
		"upper":  strings.ToUpper,
	}

	tmpl, err := template.New("keyeditor").Funcs(funcs).ParseFS(o.fsys, o.patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// MustNew is New that panics when the templates do not parse.
func MustNew(opts ...Option) *TemplateRenderer {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Has reports whether templateID resolves.
func (r *TemplateRenderer) Has(templateID string) bool {
	return r.tmpl.Lookup(templateID) != nil
}

// Render executes templateID over data.
func (r *TemplateRenderer) Render(templateID string, data any) (Markup, error) {
	t := r.tmpl.Lookup(templateID)
	if t == nil {
		return "", fmt.Errorf("template %q: %w", templateID, model.ErrUnknownTemplate)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute template %q: %w", templateID, err)
	}
	return Markup(sb.String()), nil
}
