// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit, dirty, buildTime string) {
	t.Helper()
	saved := []string{Version, GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() {
		Version, GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2], saved[3]
	})
	Version, GitCommit, GitDirty, BuildTime = version, commit, dirty, buildTime
}

func TestInfo(t *testing.T) {
	withBuildInfo(t, "1.2.3", "abc1234", "false", "2026-10-01T00:00:00Z")
	if got, want := Info(), "1.2.3 (abc1234, 2026-10-01T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got, want := Info(), "1.2.3 (abc1234-dirty, 2026-10-01T00:00:00Z)"; got != want {
		t.Errorf("Info() dirty = %q, want %q", got, want)
	}
}

func TestShortAndCommit(t *testing.T) {
	withBuildInfo(t, "0.4.0", "def5678", "false", "unknown")
	if Short() != "0.4.0" {
		t.Errorf("Short() = %q", Short())
	}
	if Commit() != "def5678" {
		t.Errorf("Commit() = %q", Commit())
	}
}

func TestPrint(t *testing.T) {
	withBuildInfo(t, "1.0.0", "abc1234", "false", "now")

	var buffer bytes.Buffer
	Print(&buffer, "blockbench")
	output := buffer.String()

	if !strings.HasPrefix(output, "blockbench 1.0.0 (abc1234, now)\n") {
		t.Errorf("unexpected first line: %q", output)
	}
	if !strings.Contains(output, runtime.Version()) {
		t.Errorf("output missing Go version: %q", output)
	}
	if !strings.Contains(output, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("output missing platform: %q", output)
	}
}
