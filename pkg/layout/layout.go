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

package layout

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/modscaffold/pkg/project"
	"gitlab.com/tozd/go/errors"
)

const (
	templateGroupPath = "com/example"
	templateID        = "example_mod"
	templateMainClass = "ExampleMod"
)

// 🧭 Step is one path operation. Paths are relative to the project root and
// use forward slashes. An empty To removes From.
type Step struct {
	Name     string
	From     string
	To       string
	Optional bool
}

// IsRemoval reports whether the step deletes its path
func (s Step) IsRemoval() bool {
	return s.To == ""
}

func (s Step) String() string {
	if s.IsRemoval() {
		return "REMOVE: " + s.From
	}
	return "MOVE: " + s.From + " -> " + s.To
}

// 📣 Reporter is told about every path the layout touches
type Reporter interface {
	Moved(ctx context.Context, from, to string)
	Removed(ctx context.Context, path string)
}

type logReporter struct{}

func (logReporter) Moved(ctx context.Context, from, to string) {
	zerolog.Ctx(ctx).Debug().Str("from", from).Str("to", to).Msg("moved")
}

func (logReporter) Removed(ctx context.Context, path string) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("removed")
}

// Option configures a Layout
type Option func(*Layout)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(l *Layout) {
		l.fs = fs
	}
}

// WithReporter sets where path operations are reported
func WithReporter(r Reporter) Option {
	return func(l *Layout) {
		l.reporter = r
	}
}

// WithKeepGit leaves the template's .git directory in place
func WithKeepGit(keep bool) Option {
	return func(l *Layout) {
		l.keepGit = keep
	}
}

// 🏗️ Layout moves template paths into place for a project
type Layout struct {
	fs       afero.Fs
	reporter Reporter
	keepGit  bool
}

// New creates a Layout
func New(opts ...Option) *Layout {
	l := &Layout{
		fs:       afero.NewOsFs(),
		reporter: logReporter{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// 📋 Plan lists the steps for p in the order they run
func Plan(p *project.Project, keepGit bool) []Step {
	lang := p.Lang.SourceDir()
	ext := p.Lang.FileExtension()
	srcMain := "src/main"
	pkgDir := path.Join(srcMain, lang, p.GroupPath(), p.ID)

	var steps []Step
	if !keepGit {
		steps = append(steps, Step{Name: "removing git metadata", From: ".git", Optional: true})
	}
	steps = append(steps,
		Step{
			Name: "moving source code",
			From: path.Join(srcMain, lang, templateGroupPath, templateID),
			To:   pkgDir,
		},
		Step{
			Name: "renaming main class",
			From: path.Join(pkgDir, templateMainClass+"."+ext),
			To:   path.Join(pkgDir, p.MainClassName+"."+ext),
		},
	)
	if p.Lang == project.Kotlin {
		steps = append(steps, Step{
			Name: "moving kotlin mixin",
			From: path.Join(srcMain, "java", templateGroupPath, templateID, "mixin"),
			To:   path.Join(srcMain, "java", p.GroupPath(), p.ID, "mixin"),
		})
	}
	steps = append(steps,
		Step{
			Name: "moving assets",
			From: path.Join(srcMain, "resources", "assets", templateID),
			To:   path.Join(srcMain, "resources", "assets", p.ID),
		},
		Step{
			Name: "moving mixin json",
			From: path.Join(srcMain, "resources", templateID+".mixins.json"),
			To:   path.Join(srcMain, "resources", p.ID+".mixins.json"),
		},
	)
	return steps
}

// 🚀 Apply runs the plan for p against the project at root, then removes the
// template package directories the moves left empty
func (l *Layout) Apply(ctx context.Context, root string, p *project.Project) error {
	logger := zerolog.Ctx(ctx)

	for _, step := range Plan(p, l.keepGit) {
		logger.Debug().Str("step", step.Name).Msg(step.String())
		if err := l.run(ctx, root, step); err != nil {
			return errors.Errorf("%s: %w", step.Name, err)
		}
	}

	langs := []string{p.Lang.SourceDir()}
	if p.Lang == project.Kotlin {
		langs = append(langs, "java")
	}
	for _, lang := range langs {
		if err := l.pruneEmpty(ctx, root, path.Join("src/main", lang), path.Join(templateGroupPath, templateID)); err != nil {
			return errors.Errorf("removing empty template directories: %w", err)
		}
	}
	return nil
}

func (l *Layout) run(ctx context.Context, root string, step Step) error {
	from := filepath.Join(root, filepath.FromSlash(step.From))

	info, err := l.fs.Stat(from)
	if err != nil {
		if os.IsNotExist(err) && step.Optional {
			return nil
		}
		return errors.Errorf("reading %s: %w", step.From, err)
	}

	if step.IsRemoval() {
		if err := l.fs.RemoveAll(from); err != nil {
			return errors.Errorf("removing %s: %w", step.From, err)
		}
		l.reporter.Removed(ctx, step.From)
		return nil
	}

	if step.From == step.To {
		return nil
	}
	if strings.HasPrefix(step.To+"/", step.From+"/") {
		return errors.Errorf("cannot move %s into itself (%s)", step.From, step.To)
	}

	to := filepath.Join(root, filepath.FromSlash(step.To))
	if _, err := l.fs.Stat(to); err == nil {
		return errors.Errorf("%s already exists", step.To)
	}

	if info.IsDir() {
		err = l.moveDir(from, to)
	} else {
		err = l.moveFile(from, to)
	}
	if err != nil {
		return errors.Errorf("moving %s to %s: %w", step.From, step.To, err)
	}

	l.reporter.Moved(ctx, step.From, step.To)
	return nil
}

func (l *Layout) moveFile(from, to string) error {
	if err := l.fs.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return err
	}
	return l.fs.Rename(from, to)
}

// moveDir moves a tree entry by entry so that it behaves the same on every
// afero backend
func (l *Layout) moveDir(from, to string) error {
	err := afero.Walk(l.fs, from, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(from, p)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)
		if info.IsDir() {
			return l.fs.MkdirAll(target, info.Mode().Perm())
		}
		return l.fs.Rename(p, target)
	})
	if err != nil {
		return err
	}
	return l.fs.RemoveAll(from)
}

// pruneEmpty removes dir/sub and then each of its parents up to dir while
// they are empty
func (l *Layout) pruneEmpty(ctx context.Context, root, dir, sub string) error {
	current := sub
	for current != "." && current != "/" && current != "" {
		rel := path.Join(dir, current)
		full := filepath.Join(root, filepath.FromSlash(rel))

		exists, err := afero.DirExists(l.fs, full)
		if err != nil {
			return err
		}
		if !exists {
			current = path.Dir(current)
			continue
		}
		empty, err := afero.IsEmpty(l.fs, full)
		if err != nil {
			return err
		}
		if !empty {
			return nil
		}
		if err := l.fs.Remove(full); err != nil {
			return err
		}
		l.reporter.Removed(ctx, rel)
		current = path.Dir(current)
	}
	return nil
}
