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

package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/walteh/modscaffold/cmd/modscaffold/opts"
	"github.com/walteh/modscaffold/pkg/config"
	"github.com/walteh/modscaffold/pkg/log"
	"github.com/walteh/modscaffold/pkg/operation"
	"github.com/walteh/modscaffold/pkg/project"
	"github.com/walteh/modscaffold/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

const fieldProjectsDir project.Field = "projects_dir"

type newFlags struct {
	loader        string
	lang          string
	projectsDir   string
	title         string
	id            string
	mavenGroup    string
	mainClass     string
	author        string
	repoURL       string
	issuesURL     string
	homepageURL   string
	verbose       bool
	dryRun        bool
	keepGit       bool
	noPersistence bool
}

// NewNewCmd creates the command that scaffolds a project
func NewNewCmd(o *opts.RootOpts) *cobra.Command {
	f := &newFlags{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a mod project from a template",
		Long: `New creates a mod project from the configured template.
It will:
1. Ask for every value not given as a flag
2. Clone the template into <projects-dir>/<title>
3. Replace the template's placeholder names with your values
4. Move the example package, main class, assets and mixins into place
5. Remember your maven group and URLs as templates for the next project`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd.Context(), cmd.Flags(), o, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.loader, "loader", "", "mod loader (quilt)")
	flags.StringVar(&f.lang, "lang", "", "source language (java, kotlin)")
	flags.StringVar(&f.projectsDir, "projects-dir", "", "directory the project is created in")
	flags.StringVar(&f.title, "title", "", "mod title, e.g. \"Example Mod\"")
	flags.StringVar(&f.id, "id", "", "mod id, e.g. example_mod")
	flags.StringVar(&f.mavenGroup, "maven-group", "", "maven group, e.g. com.example")
	flags.StringVar(&f.mainClass, "main-class", "", "main class name, e.g. ExampleMod")
	flags.StringVar(&f.author, "author", "", "author name")
	flags.StringVar(&f.repoURL, "repo-url", "", "source repository URL")
	flags.StringVar(&f.issuesURL, "issues-url", "", "issue tracker URL")
	flags.StringVar(&f.homepageURL, "homepage-url", "", "homepage URL")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "print every replacement")
	flags.BoolVar(&f.dryRun, "dry-run", false, "show what would change without creating the project")
	flags.BoolVar(&f.keepGit, "keep-git", false, "keep the template's git history")
	flags.BoolVarP(&f.noPersistence, "no-persistence", "n", false, "do not save learned values to the config")

	return cmd
}

// 🙋 filler resolves each value from its flag, then a prompt pre-filled with
// the suggestion, and records which values the user chose themselves
type filler struct {
	ctx      context.Context
	flags    *pflag.FlagSet
	prompter *prompt.Prompter
	supplied map[project.Field]bool
}

func (f *filler) value(flagName, flagValue string, q prompt.Question) (string, error) {
	if f.flags.Changed(flagName) {
		if q.Validate != nil && flagValue != "" {
			if err := q.Validate(flagValue); err != nil {
				return "", errors.Errorf("--%s: %w", flagName, err)
			}
		}
		f.supplied[q.Field] = true
		return flagValue, nil
	}

	answers, err := f.prompter.Ask(f.ctx, q)
	if err != nil {
		return "", err
	}
	value := answers[q.Field]
	if value != q.Default {
		f.supplied[q.Field] = true
	}
	return value, nil
}

func runNew(ctx context.Context, flags *pflag.FlagSet, o *opts.RootOpts, f *newFlags) error {
	logger := zerolog.Ctx(ctx)
	ui := log.FromContext(ctx)

	cfg, err := o.LoadConfig(ctx)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	fill := &filler{ctx: ctx, flags: flags, prompter: o.GetPrompter(), supplied: map[project.Field]bool{}}

	p, err := newProject(fill, cfg, f)
	if err != nil {
		return err
	}

	ui.SetVerbose(f.verbose || cfg.Verbose)

	if err := p.Validate(); err != nil {
		return errors.Errorf("validating project: %w", err)
	}

	sc, err := cfg.Scaffold(p.Loader, p.Lang)
	if err != nil {
		return err
	}

	cloner, err := o.GetCloner()
	if err != nil {
		return errors.Errorf("creating cloner: %w", err)
	}

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Cloner:   cloner,
		Reporter: ui,
		Fs:       o.Fs,
		DryRun:   f.dryRun,
		KeepGit:  f.keepGit,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	ui.StartRunOperation(ctx, log.RunOperation{
		Title:       p.Title,
		Scaffold:    sc.Name(),
		Ref:         sc.Ref,
		Destination: p.Path,
		DryRun:      f.dryRun,
	})

	result, err := op.Run(ctx, p)
	if err != nil {
		return errors.Errorf("scaffolding %s: %w", p.Title, err)
	}

	summary := ui.EndRunOperation(ctx)
	if summary.Skipped > 0 {
		ui.Warningf("%d files are not text and were left as they are", summary.Skipped)
	}

	if f.dryRun {
		for _, step := range result.Layout {
			ui.Info(step.String())
		}
		ui.Info("dry run: nothing was written")
		return nil
	}

	var learn []project.Field
	for _, field := range operation.LearnedFields {
		if fill.supplied[field] {
			learn = append(learn, field)
		}
	}
	learned := operation.Learn(cfg, p, learn...)
	if cfg.Author == "" {
		cfg.Author = p.Author
	}
	if cfg.ProjectsDir == "" {
		cfg.ProjectsDir = filepath.Dir(p.Path)
	}

	if !f.noPersistence {
		if err := o.SaveConfig(ctx, cfg); err != nil {
			return errors.Errorf("saving config: %w", err)
		}
		logger.Debug().Str("path", o.ConfigPath()).Interface("learned", learned).Msg("saved config")
	}

	ui.Successf("created %s in %s", p.Title, result.Destination)
	return nil
}

// newProject gathers every value of the project in dependency order: the
// title drives the identifier defaults, and the author feeds the learned
// templates
func newProject(fill *filler, cfg *config.Config, f *newFlags) (*project.Project, error) {
	loaderName := project.Loaders()[0].String()
	if fill.flags.Changed("loader") || len(project.Loaders()) > 1 {
		var err error
		if loaderName, err = fill.value("loader", f.loader, prompt.For(project.FieldLoader, loaderName)); err != nil {
			return nil, err
		}
	}
	loader, err := project.ParseLoader(loaderName)
	if err != nil {
		return nil, err
	}

	langName, err := fill.value("lang", f.lang, prompt.For(project.FieldLang, project.Java.String()))
	if err != nil {
		return nil, err
	}
	lang, err := project.ParseLanguage(langName)
	if err != nil {
		return nil, err
	}

	projectsDir := flagOr(f.projectsDir, cfg.ProjectsDir)
	if projectsDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
		projectsDir, err = fill.value("projects-dir", "", prompt.Question{
			Field:    fieldProjectsDir,
			Title:    "Projects directory",
			Default:  cwd,
			Required: true,
		})
		if err != nil {
			return nil, err
		}
	}

	title, err := fill.value("title", f.title, prompt.For(project.FieldTitle, ""))
	if err != nil {
		return nil, err
	}

	p := project.New(title, loader, lang, projectsDir)

	if p.ID, err = fill.value("id", f.id, prompt.For(project.FieldID, p.ID)); err != nil {
		return nil, err
	}
	if p.MainClassName, err = fill.value("main-class", f.mainClass, prompt.For(project.FieldMainClassName, p.MainClassName)); err != nil {
		return nil, err
	}
	if p.Author, err = fill.value("author", f.author, prompt.For(project.FieldAuthor, cfg.Author)); err != nil {
		return nil, err
	}

	group, err := suggestion(cfg, project.FieldMavenGroup, p)
	if err != nil {
		return nil, err
	}
	if p.MavenGroup, err = fill.value("maven-group", f.mavenGroup, prompt.For(project.FieldMavenGroup, group)); err != nil {
		return nil, err
	}

	for _, u := range []struct {
		flag  string
		value string
		field project.Field
	}{
		{flag: "repo-url", value: f.repoURL, field: project.FieldRepoURL},
		{flag: "issues-url", value: f.issuesURL, field: project.FieldIssuesURL},
		{flag: "homepage-url", value: f.homepageURL, field: project.FieldHomepageURL},
	} {
		def, err := suggestion(cfg, u.field, p)
		if err != nil {
			return nil, err
		}
		value, err := fill.value(u.flag, u.value, prompt.For(u.field, def))
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}
		if err := p.SetURL(u.field, value); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func suggestion(cfg *config.Config, field project.Field, p *project.Project) (string, error) {
	value, _, err := operation.Suggest(cfg, field, p)
	if err != nil {
		return "", errors.Errorf("rendering stored %s template: %w", field, err)
	}
	return value, nil
}

func flagOr(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return fallback
}
