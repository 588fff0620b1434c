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

package operation

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/modscaffold/pkg/config"
	"github.com/walteh/modscaffold/pkg/layout"
	"github.com/walteh/modscaffold/pkg/project"
	"github.com/walteh/modscaffold/pkg/replace"
	"github.com/walteh/modscaffold/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// gitIgnore keeps the engine out of the template's git metadata
const gitIgnore = ".git/**"

// 🎯 Cloner checks a template out into an empty directory and returns the
// ref it used
type Cloner interface {
	Clone(ctx context.Context, src source.Source, dest string) (string, error)
}

// 📣 Reporter observes the rewrite and the layout of a run
type Reporter interface {
	replace.Reporter
	layout.Reporter
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config holds the scaffolds
	Config *config.Config
	// Cloner fetches templates
	Cloner Cloner
	// Reporter receives per-file progress
	Reporter Reporter
	// Fs is where the template is rewritten. Defaults to the OS filesystem,
	// which is where Cloner must write as well.
	Fs afero.Fs
	// DryRun reports every rewrite without touching the project directory
	DryRun bool
	// KeepGit leaves the template's git history in the project
	KeepGit bool
}

// 📦 Result describes a finished run
type Result struct {
	Scaffold    string
	Ref         string
	Destination string
	Layout      []layout.Step
}

// 🎮 Operator scaffolds projects
type Operator struct {
	config   *config.Config
	cloner   Cloner
	reporter Reporter
	fs       afero.Fs
	dryRun   bool
	keepGit  bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Cloner == nil {
		return nil, errors.Errorf("cloner is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Operator{
		config:   opts.Config,
		cloner:   opts.Cloner,
		reporter: opts.Reporter,
		fs:       fs,
		dryRun:   opts.DryRun,
		keepGit:  opts.KeepGit,
	}, nil
}

// 🚀 Run scaffolds p into p.Path
func (o *Operator) Run(ctx context.Context, p *project.Project) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if err := p.Validate(); err != nil {
		return nil, errors.Errorf("validating project: %w", err)
	}

	sc, err := o.config.Scaffold(p.Loader, p.Lang)
	if err != nil {
		return nil, err
	}
	rs, err := sc.RuleSet()
	if err != nil {
		return nil, errors.Errorf("loading rules for %s: %w", sc.Name(), err)
	}
	if err := rs.Validate(); err != nil {
		return nil, errors.Errorf("validating rules for %s: %w", sc.Name(), err)
	}

	dest := p.Path
	if o.dryRun {
		scratch, err := afero.TempDir(o.fs, "", "modscaffold-")
		if err != nil {
			return nil, errors.Errorf("creating scratch directory: %w", err)
		}
		defer func() {
			if err := o.fs.RemoveAll(scratch); err != nil {
				logger.Warn().Err(err).Str("dir", scratch).Msg("removing scratch directory")
			}
		}()
		dest = filepath.Join(scratch, filepath.Base(p.Path))
	} else if err := o.checkDestination(dest); err != nil {
		return nil, err
	}

	logger.Debug().Str("scaffold", sc.Name()).Str("dest", dest).Bool("dry_run", o.dryRun).Msg("cloning template")

	ref, err := o.cloner.Clone(ctx, source.Source{Repository: sc.Repository, Ref: sc.Ref}, dest)
	if err != nil {
		return nil, errors.Errorf("cloning template: %w", err)
	}

	engine := replace.New(
		replace.WithFs(o.fs),
		replace.WithReporter(o.reporter),
		replace.WithIgnore(append([]string{gitIgnore}, sc.Ignore...)...),
		replace.WithDryRun(o.dryRun),
	)
	if err := engine.Apply(ctx, rs, dest, p); err != nil {
		return nil, errors.Errorf("rewriting template: %w", err)
	}

	result := &Result{
		Scaffold:    sc.Name(),
		Ref:         ref,
		Destination: p.Path,
		Layout:      layout.Plan(p, o.keepGit),
	}
	if o.dryRun {
		return result, nil
	}

	lay := layout.New(
		layout.WithFs(o.fs),
		layout.WithReporter(o.reporter),
		layout.WithKeepGit(o.keepGit),
	)
	if err := lay.Apply(ctx, dest, p); err != nil {
		return nil, errors.Errorf("laying out project: %w", err)
	}

	return result, nil
}

// checkDestination fails early when the project directory already has
// content, before anything is fetched
func (o *Operator) checkDestination(dest string) error {
	empty, err := afero.IsEmpty(o.fs, dest)
	if err != nil {
		if exists, _ := afero.Exists(o.fs, dest); !exists {
			return nil
		}
		return errors.Errorf("reading destination: %w", err)
	}
	if !empty {
		return errors.Errorf("%q: %w", dest, source.ErrDestinationNotEmpty)
	}
	return nil
}
