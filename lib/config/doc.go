// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for blockbench.
//
// Configuration is loaded from a single file specified by either the
// BLOCKBENCH_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). With neither, [Load] returns the built-in
// [Default]: the six-template palette with previews enabled. There is
// no ~/.config discovery and no automatic file search.
//
// Files ending in .json or .jsonc are passed through tidwall/jsonc
// first, so comments and trailing commas are allowed; the result is
// decoded as YAML, which is a JSON superset. Unknown keys are errors.
//
// Key exports:
//
//   - [Config] -- master struct with Palette, Workspace, Log
//   - [Default] -- the built-in configuration
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every problem via errors.Join
//   - [Config.Templates] -- converts the palette to block templates
package config
