// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger_JSONWhenNotTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, slog.LevelInfo)
	logger.Info("configuration loaded", "source", "default")

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buffer.String(), err)
	}
	if record["msg"] != "configuration loaded" || record["source"] != "default" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestNewLogger_TextWhenTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, true, slog.LevelInfo)
	logger.Info("configuration loaded", "source", "default")

	output := buffer.String()
	if !strings.Contains(output, `msg="configuration loaded"`) || !strings.Contains(output, "source=default") {
		t.Errorf("expected text output, got %q", output)
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, slog.LevelWarn)
	logger.Info("hidden")
	if buffer.Len() != 0 {
		t.Errorf("info record should be filtered at warn, got %q", buffer.String())
	}
}
