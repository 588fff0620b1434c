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

// Package log prints what a scaffold run does for a person at a terminal,
// and mirrors every line into zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 45 // Base width for filename
	statusWidth = 12 // Width for status text
)

// Status of a file after a run
const (
	StatusRewritten = "REWRITTEN"
	StatusUnchanged = "UNCHANGED"
	StatusSkipped   = "SKIPPED"
	StatusPreview   = "DRY-RUN"
	StatusMoved     = "MOVED"
	StatusRemoved   = "REMOVED"
)

// 🎯 FileOperation represents a file operation for logging
type FileOperation struct {
	Path         string // File path, relative to the project
	Status       string // Operation status
	Target       string // New path for moves
	IsModified   bool   // Whether the content changed
	IsSkipped    bool   // Whether the file could not be read
	IsRemoved    bool   // Whether the file was removed
	IsMoved      bool   // Whether the file was moved
	Replacements int    // Number of replacements made
}

// 📦 RunOperation describes one scaffold run
type RunOperation struct {
	Title       string // Project title
	Scaffold    string // Scaffold name (loader/lang)
	Ref         string // Template ref
	Destination string // Project directory
	DryRun      bool   // Whether files are left untouched
}

// 📊 Summary counts the file operations of a run
type Summary struct {
	Rewritten int
	Unchanged int
	Skipped   int
	Moved     int
	Removed   int
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	verbose    bool
	currentOp  *RunOperation
	operations []FileOperation
	pending    map[string]int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
		pending: map[string]int{},
	}
}

// SetVerbose prints every applied rule when enabled
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsSkipped:
		symbol = '!'
		symbolColor = color.FgYellow
	case op.IsRemoved:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsMoved:
		symbol = '→'
		symbolColor = color.FgMagenta
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	name := op.Path
	if op.IsMoved {
		name = op.Path + " -> " + op.Target
	}

	detail := ""
	if op.Replacements > 0 {
		detail = color.New(color.Faint).Sprintf("%d replacements", op.Replacements)
	}

	return strings.TrimRight(fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, name),
		fmt.Sprintf("%-*s", statusWidth, op.Status),
		detail), " ")
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logFileOperation(op)
}

func (l *Logger) logFileOperation(op FileOperation) {
	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Info().
		Str("file", op.Path).
		Str("target", op.Target).
		Str("status", op.Status).
		Bool("is_modified", op.IsModified).
		Bool("is_skipped", op.IsSkipped).
		Bool("is_moved", op.IsMoved).
		Bool("is_removed", op.IsRemoved).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 StartRunOperation starts a new scaffold run
func (l *Logger) StartRunOperation(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil
	l.pending = map[string]int{}

	mode := "scaffolding"
	if op.DryRun {
		mode = "previewing"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", mode,
		color.New(color.FgCyan).Sprint(op.Destination))

	ref := op.Ref
	if ref == "" {
		ref = "default branch"
	}
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Scaffold),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(ref))

	l.zlog.Info().
		Str("title", op.Title).
		Str("scaffold", op.Scaffold).
		Str("ref", op.Ref).
		Str("destination", op.Destination).
		Bool("dry_run", op.DryRun).
		Msg("starting scaffold run")
}

// 📝 EndRunOperation ends the current run and prints its summary
func (l *Logger) EndRunOperation(ctx context.Context) Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	summary := l.summary()
	if l.currentOp == nil {
		return summary
	}

	fmt.Fprintf(l.console, "\n%s %s\n",
		color.New(color.Bold).Sprint("summary"),
		color.New(color.Faint).Sprintf("• %d rewritten, %d unchanged, %d skipped, %d moved, %d removed",
			summary.Rewritten, summary.Unchanged, summary.Skipped, summary.Moved, summary.Removed))

	l.zlog.Info().
		Str("scaffold", l.currentOp.Scaffold).
		Int("files", len(l.operations)).
		Int("rewritten", summary.Rewritten).
		Int("unchanged", summary.Unchanged).
		Int("skipped", summary.Skipped).
		Msg("scaffold run complete")

	l.currentOp = nil
	l.operations = nil
	return summary
}

// Summary counts the operations logged since the run started
func (l *Logger) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.summary()
}

func (l *Logger) summary() Summary {
	var s Summary
	for _, op := range l.operations {
		switch {
		case op.IsSkipped:
			s.Skipped++
		case op.IsRemoved:
			s.Removed++
		case op.IsMoved:
			s.Moved++
		case op.IsModified:
			s.Rewritten++
		default:
			s.Unchanged++
		}
	}
	return s
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("modscaffold")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

func (l *Logger) print(printer *pterm.PrefixPrinter, msg string) {
	fmt.Fprint(l.console, printer.Sprintln(msg))
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}), msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}), msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}), msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.print(pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"}), msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 🔍 formatDiff renders the changed spans between before and after, one
// line per inserted or deleted span
func formatDiff(before, after string) []string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var lines []string
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\n", "⏎")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			lines = append(lines, color.New(color.FgRed).Sprint("- "+text))
		case diffmatchpatch.DiffInsert:
			lines = append(lines, color.New(color.FgGreen).Sprint("+ "+text))
		}
	}
	return lines
}
