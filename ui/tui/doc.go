// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal front-end of the key editor. Input is
// translated into panel events; all editing state lives in `core/panel`.
package tui
