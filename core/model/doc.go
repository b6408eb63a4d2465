// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the data types shared by the key editor core: content
// block identifiers, option descriptors, modifier and layer key identifiers,
// and the sentinel errors surfaced by the registry, renderer and panel.
package model
