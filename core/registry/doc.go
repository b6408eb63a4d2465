// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package registry holds the static configuration of the key editor: the tab
// bar and, per content block, the ordered sections of option descriptors the
// templates render. The data is an embedded YAML document parsed once; every
// accessor returns copies so callers cannot mutate the registry.
package registry
