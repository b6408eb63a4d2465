// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated labels of the key editor. It uses the
// go-i18n library with YAML message files embedded into the binary.
package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded locale and selects lang. Unknown languages fall
// back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.MustParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
	current = lang
}

// T translates messageID. Missing messages return the id itself.
func T(messageID string) string {
	return Tf(messageID, nil)
}

// Tf translates messageID, executing the message as a template over data.
func Tf(messageID string, data map[string]any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Lang returns the language passed to the last Init.
func Lang() string {
	if localizer == nil {
		Init("en")
	}
	return current
}

// Languages lists the tags of the embedded locale files.
func Languages() []string {
	files, _ := fs.ReadDir(localeFS, "locales")
	langs := make([]string, 0, len(files))
	for _, f := range files {
		name := f.Name()
		langs = append(langs, name[:len(name)-len(".yaml")])
	}
	return langs
}
