// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package blockui

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestTUILogHandlerEnabled(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be below a warn handler's level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should pass a warn handler")
	}
}

func TestTUILogHandlerWithoutProgramDrops(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelDebug)
	record := slog.NewRecord(time.Now(), slog.LevelWarn, "dropped", 0)
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Errorf("Handle without a program returned %v", err)
	}
}

func TestTUILogHandlerSummarize(t *testing.T) {
	base := NewTUILogHandler(slog.LevelDebug)
	derived := base.WithAttrs([]slog.Attr{slog.String("component", "config")}).
		WithGroup("palette").
		WithAttrs([]slog.Attr{slog.Int("index", 2)}).(*TUILogHandler)

	record := slog.NewRecord(time.Now(), slog.LevelWarn, "entry skipped", 0)
	record.AddAttrs(slog.String("id", "loop"))

	want := "entry skipped (component=config, palette.index=2, palette.id=loop)"
	if got := derived.summarize(record); got != want {
		t.Errorf("summarize = %q, want %q", got, want)
	}

	plain := slog.NewRecord(time.Now(), slog.LevelWarn, "bare", 0)
	if got := base.summarize(plain); got != "bare" {
		t.Errorf("summarize without attrs = %q, want %q", got, "bare")
	}
}

func TestTUILogHandlerDerivedSharesProgram(t *testing.T) {
	base := NewTUILogHandler(slog.LevelDebug)
	derived := base.WithAttrs([]slog.Attr{slog.Bool("tui", true)}).(*TUILogHandler)
	if derived.program != base.program {
		t.Error("derived handler should share the program pointer")
	}
}
