// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Keyeditor using Cobra.
// It wires configuration, logging and i18n, then hands over to the TUI or
// to one of the non-interactive commands. Editing logic stays in `core`.
package cli
