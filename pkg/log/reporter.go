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
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// The methods below let a Logger observe a replace.Engine run and a layout
// pass. Paths are relative to the project root.

// 🔄 RuleApplied prints `path: find -> replacement (N)` in verbose mode
func (l *Logger) RuleApplied(ctx context.Context, path, find, with string, count int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending[path] += count

	if l.verbose {
		fmt.Fprintf(l.console, "%*s%s: %s -> %s %s\n", fileIndent, "",
			path,
			color.New(color.FgYellow).Sprint(find),
			color.New(color.FgGreen).Sprint(with),
			color.New(color.Faint).Sprintf("(%d)", count))
	}

	l.zlog.Debug().
		Str("file", path).
		Str("find", find).
		Str("with", with).
		Int("count", count).
		Msg("rule applied")
}

// ⚠️ FileSkipped records a file the engine could not read
func (l *Logger) FileSkipped(ctx context.Context, path string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.pending, path)
	l.logFileOperation(FileOperation{
		Path:      path,
		Status:    StatusSkipped,
		IsSkipped: true,
	})
	l.zlog.Debug().Err(err).Str("file", path).Msg("skipped unreadable file")
}

// 📄 FileProcessed records a rewritten file. In dry runs it also prints the
// changed spans.
func (l *Logger) FileProcessed(ctx context.Context, path, before, after string, written bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := l.pending[path]
	delete(l.pending, path)

	modified := before != after
	status := StatusUnchanged
	switch {
	case !written:
		status = StatusPreview
	case modified:
		status = StatusRewritten
	}

	// unchanged files are only worth a line when asked for
	if !modified && !l.verbose {
		l.operations = append(l.operations, FileOperation{Path: path, Status: status})
		return
	}

	l.logFileOperation(FileOperation{
		Path:         path,
		Status:       status,
		IsModified:   modified,
		Replacements: count,
	})

	if !written && modified {
		for _, line := range formatDiff(before, after) {
			fmt.Fprintf(l.console, "%*s%s\n", fileIndent*2, "", line)
		}
	}
}

// 🚚 Moved records a path the layout pass moved
func (l *Logger) Moved(ctx context.Context, from, to string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFileOperation(FileOperation{
		Path:    from,
		Target:  to,
		Status:  StatusMoved,
		IsMoved: true,
	})
}

// 🗑️ Removed records a path the layout pass removed
func (l *Logger) Removed(ctx context.Context, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFileOperation(FileOperation{
		Path:      strings.TrimSuffix(path, "/"),
		Status:    StatusRemoved,
		IsRemoved: true,
	})
}
