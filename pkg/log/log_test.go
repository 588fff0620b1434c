// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func plain(t *testing.T) {
	t.Helper()
	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})
}

func lines(buf *bytes.Buffer) []string {
	output := strings.TrimSpace(buf.String())
	if output == "" {
		return nil
	}
	out := strings.Split(output, "\n")
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

func TestLogger(t *testing.T) {
	plain(t)

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "build.gradle",
					Status:       StatusRewritten,
					IsModified:   true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				fmt.Sprintf("⟳ %-45s %-12s 2 replacements", "build.gradle", StatusRewritten),
			},
		},
		{
			name: "log_run_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRunOperation(context.Background(), RunOperation{
					Title:       "My Mod",
					Scaffold:    "quilt/java",
					Ref:         "v1.0.0",
					Destination: "/tmp/My Mod",
				})
			},
			wantLogs: []string{
				"[scaffolding /tmp/My Mod]",
				"◆ quilt/java • v1.0.0",
			},
		},
		{
			name: "log_dry_run_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartRunOperation(context.Background(), RunOperation{
					Scaffold:    "quilt/kotlin",
					Destination: "/tmp/x",
					DryRun:      true,
				})
			},
			wantLogs: []string{
				"[previewing /tmp/x]",
				"◆ quilt/kotlin • default branch",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("creating My Mod")
			},
			wantLogs: []string{
				"modscaffold • creating My Mod",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("first")
				logger.LogNewline()
				logger.Header("second")
			},
			wantLogs: []string{
				"modscaffold • first",
				"",
				"",
				"",
				"modscaffold • second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			tt.op(t, logger)

			got := lines(buf)
			require.Equal(t, len(tt.wantLogs), len(got), "number of log lines should match: %q", got)
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, got[i], "log line %d should match", i)
			}
		})
	}
}

func TestLogger_Messages(t *testing.T) {
	plain(t)

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Disabled)

	logger.Infof("info %s", "test")
	logger.Warningf("warning %s", "test")
	logger.Errorf("error %s", "test")
	logger.Successf("success %s", "test")

	output := buf.String()
	assert.Contains(t, output, "info test")
	assert.Contains(t, output, "warning test")
	assert.Contains(t, output, "error test")
	assert.Contains(t, output, "success test")
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.InfoLevel)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileOperationFormatting(t *testing.T) {
	plain(t)

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "unchanged_file",
			op:   FileOperation{Path: "LICENSE", Status: StatusUnchanged},
			want: fmt.Sprintf("    • %-45s %s", "LICENSE", StatusUnchanged),
		},
		{
			name: "skipped_file",
			op:   FileOperation{Path: "icon.png", Status: StatusSkipped, IsSkipped: true},
			want: fmt.Sprintf("    ! %-45s %s", "icon.png", StatusSkipped),
		},
		{
			name: "moved_dir",
			op:   FileOperation{Path: "a", Target: "b", Status: StatusMoved, IsMoved: true},
			want: fmt.Sprintf("    → %-45s %s", "a -> b", StatusMoved),
		},
		{
			name: "removed_dir",
			op:   FileOperation{Path: ".git", Status: StatusRemoved, IsRemoved: true},
			want: fmt.Sprintf("    ✗ %-45s %s", ".git", StatusRemoved),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(io.Discard, zerolog.Disabled)
			assert.Equal(t, tt.want, logger.formatFileOperation(tt.op))
		})
	}
}

func TestLogger_Reporter(t *testing.T) {
	plain(t)
	ctx := context.Background()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Disabled)
	logger.StartRunOperation(ctx, RunOperation{Scaffold: "quilt/java", Destination: "/p"})
	buf.Reset()

	logger.RuleApplied(ctx, "a.txt", "example_mod", "my_mod", 2)
	logger.FileProcessed(ctx, "a.txt", "example_mod example_mod", "my_mod my_mod", true)
	logger.FileProcessed(ctx, "b.txt", "same", "same", true)
	logger.FileSkipped(ctx, "c.png", errors.New("not text"))
	logger.Moved(ctx, "src/com/example", "src/io/acme")
	logger.Removed(ctx, ".git/")

	got := lines(buf)
	require.Len(t, got, 4, "%q", got)
	assert.Equal(t, fmt.Sprintf("⟳ %-45s %-12s 2 replacements", "a.txt", StatusRewritten), got[0])
	assert.Contains(t, got[1], "c.png")
	assert.Contains(t, got[2], "src/com/example -> src/io/acme")
	assert.Contains(t, got[3], ".git")

	summary := logger.EndRunOperation(ctx)
	assert.Equal(t, Summary{Rewritten: 1, Unchanged: 1, Skipped: 1, Moved: 1, Removed: 1}, summary)
	assert.Contains(t, buf.String(), "1 rewritten, 1 unchanged, 1 skipped, 1 moved, 1 removed")
}

func TestLogger_Verbose(t *testing.T) {
	plain(t)
	ctx := context.Background()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Disabled)
	logger.SetVerbose(true)

	logger.RuleApplied(ctx, "a.txt", "example_mod", "my_mod", 3)
	logger.FileProcessed(ctx, "b.txt", "same", "same", true)

	got := lines(buf)
	require.Len(t, got, 2)
	assert.Equal(t, "a.txt: example_mod -> my_mod (3)", got[0])
	assert.Contains(t, got[1], "UNCHANGED")
}

func TestLogger_DryRunDiff(t *testing.T) {
	plain(t)
	ctx := context.Background()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Disabled)

	logger.FileProcessed(ctx, "quilt.mod.json", `"id": "example_mod"`, `"id": "my_mod"`, false)

	got := lines(buf)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Contains(t, got[0], StatusPreview)
	assert.Contains(t, got, "- example")
	assert.Contains(t, got, "+ my")
}

func TestFormatDiff(t *testing.T) {
	plain(t)

	assert.Empty(t, formatDiff("same", "same"))
	assert.Equal(t, []string{"- a", "+ b"}, formatDiff("a\n", "b\n"))
	assert.Equal(t, []string{"+ c⏎"}, formatDiff("a\nb", "a\nc\nb"))
}
