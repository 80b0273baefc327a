// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the error and logging conventions for the
// blockbench command.
//
// Errors returned from the command are [ToolError] values carrying an
// [ErrorCategory] and an optional hint, or an [ExitError] when output
// has already been written. [Exit] turns either into a process exit
// code. [NewCommandLogger] picks a text or JSON slog handler depending
// on whether stderr is a terminal.
package cli
