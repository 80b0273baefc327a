// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the block builder. Everything
// else is done with the mouse.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
