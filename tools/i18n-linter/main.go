// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every translation key the editor uses exists in all
// locale files. Keys are collected from i18n.T/Tf calls in Go sources, from
// T calls in the render templates and from the titles of the registry.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/toeirei/keyeditor/core/registry"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	goKeyRe       = regexp.MustCompile(`i18n\.Tf?\("([^"]+)"`)
	templateKeyRe = regexp.MustCompile(`\{\{-?\s*T\s+"([^"]+)"`)
)

// Report is the outcome of one lint run.
type Report struct {
	Used     []string
	Missing  map[string][]string // locale file -> keys used but absent
	Orphaned []string            // keys of the primary locale nobody uses
}

// Failed reports whether a locale lacks a used key.
func (r Report) Failed() bool {
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	report, err := lint(projectRoot, localesDir, registry.Default())
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d unique translation keys in use.\n\n", len(report.Used))

	fmt.Println("--- Checking for Missing Keys ---")
	files := make([]string, 0, len(report.Missing))
	for file := range report.Missing {
		files = append(files, file)
	}
	slices.Sort(files)
	for _, file := range files {
		fmt.Printf("Checking %s:\n", file)
		if len(report.Missing[file]) == 0 {
			fmt.Println("  ✨ All keys present.")
		}
		for _, key := range report.Missing[file] {
			fmt.Printf("  - Missing: %s\n", key)
		}
	}

	fmt.Println("\n--- Checking for Orphaned Keys ---")
	if len(report.Orphaned) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, key := range report.Orphaned {
		fmt.Printf("  - Orphaned: %s\n", key)
	}

	fmt.Println("\n--- Linter Finished ---")
	switch {
	case report.Failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(report.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

// lint compares the keys used below root and by reg against the locale
// files in locales.
func lint(root, locales string, reg *registry.Registry) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("finding used keys: %w", err)
	}
	for _, key := range registryKeys(reg) {
		used[key] = struct{}{}
	}

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return Report{}, fmt.Errorf("finding locale files: %w", err)
	}
	if !slices.Contains(files, filepath.Join(locales, primaryLocale)) {
		return Report{}, fmt.Errorf("primary locale %s not found in %s", primaryLocale, locales)
	}

	report := Report{Used: sortedKeys(used), Missing: map[string][]string{}}
	for _, file := range files {
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for _, key := range report.Used {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		report.Missing[filepath.Base(file)] = missing

		if filepath.Base(file) == primaryLocale {
			for _, key := range sortedKeys(keys) {
				if _, ok := used[key]; !ok {
					report.Orphaned = append(report.Orphaned, key)
				}
			}
		}
	}
	return report, nil
}

// findUsedKeys scans Go sources and templates below root. Tests and the
// tools directory are skipped.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name == "tools" || (path != root && strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}

		var re *regexp.Regexp
		switch {
		case strings.HasSuffix(path, "_test.go"):
			return nil
		case strings.HasSuffix(path, ".go"):
			re = goKeyRe
		case strings.HasSuffix(path, ".tmpl"):
			re = templateKeyRe
		default:
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range re.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// registryKeys returns the titles of all tabs and sections.
func registryKeys(reg *registry.Registry) []string {
	var keys []string
	for _, tab := range reg.Tabs() {
		keys = append(keys, tab.Title)
		block, err := reg.Block(tab.Content)
		if err != nil {
			continue
		}
		for _, sec := range block.Sections {
			if sec.Title != "" {
				keys = append(keys, sec.Title)
			}
		}
	}
	return keys
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys. Flat files
// with dotted keys come out unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
