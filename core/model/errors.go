// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "errors"

var (
	// ErrUnknownTemplate is returned when a content block has no registered template.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrInvalidGroupMembership is returned when a member is selected in a group it does not belong to.
	ErrInvalidGroupMembership = errors.New("member does not belong to group")
	// ErrUnknownContentBlock is returned by registry lookups for ids outside the closed set.
	ErrUnknownContentBlock = errors.New("unknown content block")
)
