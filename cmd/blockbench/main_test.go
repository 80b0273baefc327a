// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/blockbench/cmd/blockbench/cli"
	"github.com/bureau-foundation/blockbench/lib/config"
)

// runExpectingError runs the command and returns its ToolError.
func runExpectingError(t *testing.T, args ...string) *cli.ToolError {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")

	var stdout bytes.Buffer
	err := run(args, &stdout)
	if err == nil {
		t.Fatalf("run(%v) succeeded, expected an error", args)
	}
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("run(%v) returned %T (%v), want *cli.ToolError", args, err, err)
	}
	return toolErr
}

func TestRunVersion(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"--version"}, &stdout); err != nil {
		t.Fatalf("run --version: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "blockbench ") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRunUnexpectedArgument(t *testing.T) {
	toolErr := runExpectingError(t, "extra")
	if toolErr.Category != cli.CategoryValidation {
		t.Errorf("Category = %q, want validation", toolErr.Category)
	}
	if !strings.Contains(toolErr.Error(), "unexpected argument: extra") {
		t.Errorf("Error() = %q", toolErr.Error())
	}
}

func TestRunUnknownFlag(t *testing.T) {
	toolErr := runExpectingError(t, "--palette")
	if toolErr.Category != cli.CategoryValidation {
		t.Errorf("Category = %q, want validation", toolErr.Category)
	}
	if toolErr.Hint == "" {
		t.Error("unknown flag error should carry a hint")
	}
}

func TestRunMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	toolErr := runExpectingError(t, "--config", missing)
	if toolErr.Category != cli.CategoryNotFound {
		t.Errorf("Category = %q, want not_found", toolErr.Category)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "blockbench.yaml")
	content := "workspace:\n  palette_width: 4\npalette:\n  - id: x\n    kind: loop\n    label: X\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	toolErr := runExpectingError(t, "--config", configPath)
	if toolErr.Category != cli.CategoryValidation {
		t.Errorf("Category = %q, want validation", toolErr.Category)
	}
	message := toolErr.Error()
	for _, want := range []string{configPath, "palette_width", `unknown block kind "loop"`} {
		if !strings.Contains(message, want) {
			t.Errorf("error missing %q:\n%s", want, message)
		}
	}
}

func TestRunInvalidLogLevelFlag(t *testing.T) {
	toolErr := runExpectingError(t, "--log-level", "verbose")
	if toolErr.Category != cli.CategoryValidation {
		t.Errorf("Category = %q, want validation", toolErr.Category)
	}
}

func TestLoadConfigSources(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")
	_, source, err := loadConfig("")
	if err != nil || source != "built-in defaults" {
		t.Errorf("loadConfig without flag or env = %q, %v", source, err)
	}

	configPath := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(configPath, []byte("workspace:\n  placeholder: From env\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(config.EnvironmentVariable, configPath)
	cfg, source, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig from env: %v", err)
	}
	if source != configPath || cfg.Workspace.Placeholder != "From env" {
		t.Errorf("loadConfig from env = %q, placeholder %q", source, cfg.Workspace.Placeholder)
	}
}

// recordingHandler counts the records it receives.
type recordingHandler struct {
	level   slog.Level
	records *[]string
}

func (handler recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

func (handler recordingHandler) Handle(_ context.Context, record slog.Record) error {
	*handler.records = append(*handler.records, record.Message)
	return nil
}

func (handler recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return handler }
func (handler recordingHandler) WithGroup(string) slog.Handler      { return handler }

func TestFanoutHandler(t *testing.T) {
	var warnRecords, debugRecords []string
	fanout := fanoutHandler{
		recordingHandler{level: slog.LevelWarn, records: &warnRecords},
		recordingHandler{level: slog.LevelDebug, records: &debugRecords},
	}
	ctx := context.Background()

	if !fanout.Enabled(ctx, slog.LevelDebug) {
		t.Error("fanout should be enabled when any handler is")
	}

	for _, record := range []slog.Record{
		slog.NewRecord(time.Now(), slog.LevelDebug, "drag started", 0),
		slog.NewRecord(time.Now(), slog.LevelWarn, "palette entry skipped", 0),
	} {
		if err := fanout.Handle(ctx, record); err != nil {
			t.Fatalf("Handle: %v", err)
		}
	}

	if len(warnRecords) != 1 || warnRecords[0] != "palette entry skipped" {
		t.Errorf("warn handler got %v", warnRecords)
	}
	if len(debugRecords) != 2 {
		t.Errorf("debug handler got %v, want both records", debugRecords)
	}
}

func TestOpenFileLogHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockbench.jsonl")
	handler, closer, err := openFileLogHandler(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("openFileLogHandler: %v", err)
	}
	slog.New(handler).Info("block placed", "index", 0)
	slog.New(handler).Debug("filtered")
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], `"msg":"block placed"`) {
		t.Errorf("log file = %q, want one block placed record", string(data))
	}
}
