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

package replace

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/modscaffold/pkg/project"
	"gitlab.com/tozd/go/errors"
)

// 📢 Reporter observes an engine run. It never changes what the engine does.
type Reporter interface {
	// RuleApplied is called for every rule whose matcher selected a file
	RuleApplied(ctx context.Context, path, find, with string, count int)
	// FileSkipped is called for every file that could not be read as text
	FileSkipped(ctx context.Context, path string, err error)
	// FileProcessed is called once per rewritten file. written is false in
	// dry runs.
	FileProcessed(ctx context.Context, path, before, after string, written bool)
}

// ⚙️ Engine walks a directory tree applying a rule set to every text file
type Engine struct {
	fs       afero.Fs
	reporter Reporter
	ignore   []string
	dryRun   bool
}

// Option configures an Engine
type Option func(*Engine)

// WithFs sets the filesystem the engine reads and writes. Defaults to the OS.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

// WithReporter sets the observer of the run. Defaults to the context logger.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithIgnore sets doublestar globs, relative to the root, of files the engine
// neither reads nor writes
func WithIgnore(patterns ...string) Option {
	return func(e *Engine) {
		e.ignore = append(e.ignore, patterns...)
	}
}

// WithDryRun makes the engine compute and report every rewrite without
// writing anything
func WithDryRun(dryRun bool) Option {
	return func(e *Engine) {
		e.dryRun = dryRun
	}
}

// 🏭 New creates an engine
func New(opts ...Option) *Engine {
	e := &Engine{
		fs:       afero.NewOsFs(),
		reporter: logReporter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// 🚀 Apply rewrites every file under root with rs on the OS filesystem
func Apply(ctx context.Context, rs RuleSet, root string, p *project.Project) error {
	return New().Apply(ctx, rs, root, p)
}

// 🚀 Apply rewrites every text file under root with rs, resolving each
// rule's replacement against p. Invalid rules fail the call before any file
// is read.
func (e *Engine) Apply(ctx context.Context, rs RuleSet, root string, p *project.Project) error {
	logger := zerolog.Ctx(ctx)

	rules, err := rs.compile()
	if err != nil {
		return errors.Errorf("validating rules: %w", err)
	}
	for _, pattern := range e.ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	logger.Debug().Str("root", root).Str("rule_set", rs.Name).Int("rules", len(rules)).Bool("dry_run", e.dryRun).Msg("applying rule set")

	err = afero.Walk(e.fs, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return errors.Errorf("walking %s: %w", root, walkErr)
			}
			e.reporter.FileSkipped(ctx, e.rel(root, path), &UnreadableFileError{Path: e.rel(root, path), Err: walkErr})
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		return e.processFile(ctx, rules, root, path, info, p)
	})
	if err != nil {
		return err
	}

	return nil
}

// 📄 processFile runs the rules over one file
func (e *Engine) processFile(ctx context.Context, rules []Rule, root, path string, info os.FileInfo, p *project.Project) error {
	rel := e.rel(root, path)
	if !utf8.ValidString(rel) {
		return errors.Errorf("%q: %w", rel, ErrPathEncoding)
	}

	if e.shouldIgnore(ctx, rel) {
		return nil
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		e.reporter.FileSkipped(ctx, rel, &UnreadableFileError{Path: rel, Err: err})
		return nil
	}
	if !utf8.Valid(data) {
		e.reporter.FileSkipped(ctx, rel, &UnreadableFileError{Path: rel, Err: ErrNotText})
		return nil
	}

	result, err := ReplaceText(rel, string(data), rules, p)
	if err != nil {
		return errors.Errorf("replacing text in %s: %w", rel, err)
	}

	for _, applied := range result.Applied {
		e.reporter.RuleApplied(ctx, rel, applied.Find, applied.With, applied.Count)
	}

	if e.dryRun {
		e.reporter.FileProcessed(ctx, rel, result.OriginalContent, result.ModifiedContent, false)
		return nil
	}

	if err := e.writeFile(path, []byte(result.ModifiedContent), info.Mode().Perm()); err != nil {
		return &WriteError{Path: rel, Err: err}
	}

	e.reporter.FileProcessed(ctx, rel, result.OriginalContent, result.ModifiedContent, true)
	return nil
}

// 🔍 shouldIgnore checks the file against the ignore globs
func (e *Engine) shouldIgnore(ctx context.Context, rel string) bool {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range e.ignore {
		matched, err := doublestar.Match(pattern, slashed)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", slashed).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", slashed).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}

// writeFile overwrites the file in place. A file its owner may not write
// is refused even when the process could write it anyway.
func (e *Engine) writeFile(path string, content []byte, perm os.FileMode) error {
	if perm&0o200 == 0 {
		return errors.Errorf("file mode %s: %w", perm, os.ErrPermission)
	}

	f, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.Errorf("opening file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return errors.Errorf("writing file: %w", err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}

	return nil
}

func (e *Engine) rel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
