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

// Package prompt collects the project values that were not given on the
// command line.
package prompt

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/walteh/modscaffold/pkg/project"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrCancelled is returned when the user aborts a prompt
	ErrCancelled = errors.Base("prompt cancelled")
	// ErrNotInteractive is returned when a required value has no default and
	// stdin is not a terminal
	ErrNotInteractive = errors.Base("not running in a terminal")
)

var titles = map[project.Field]string{
	project.FieldTitle:         "Mod title",
	project.FieldID:            "Mod id",
	project.FieldMainClassName: "Main class name",
	project.FieldMavenGroup:    "Maven group",
	project.FieldAuthor:        "Author",
	project.FieldRepoURL:       "Repository URL",
	project.FieldIssuesURL:     "Issues URL",
	project.FieldHomepageURL:   "Homepage URL",
	project.FieldLang:          "Language",
	project.FieldLoader:        "Loader",
}

// ❓ Question asks for the value of one field
type Question struct {
	Field       project.Field
	Title       string
	Description string
	Default     string
	Options     []string
	Required    bool
	Validate    func(string) error
}

// For builds the question for field, pre-filled with def
func For(field project.Field, def string) Question {
	title, ok := titles[field]
	if !ok {
		title = string(field)
	}
	q := Question{
		Field:    field,
		Title:    title,
		Default:  def,
		Required: !isURLField(field),
		Validate: Validator(field),
	}
	switch field {
	case project.FieldLang:
		for _, l := range project.Languages() {
			q.Options = append(q.Options, l.String())
		}
	case project.FieldLoader:
		for _, l := range project.Loaders() {
			q.Options = append(q.Options, l.String())
		}
	}
	return q
}

func (q Question) check(value string) error {
	if value == "" {
		if q.Required {
			return errors.Errorf("%s is required", strings.ToLower(q.Title))
		}
		return nil
	}
	if q.Validate != nil {
		return q.Validate(value)
	}
	return nil
}

// 🔍 Validator returns the syntax check for a field's value
func Validator(field project.Field) func(string) error {
	switch field {
	case project.FieldID:
		return project.ValidateID
	case project.FieldMainClassName:
		return project.ValidateClassName
	case project.FieldMavenGroup:
		return project.ValidateGroup
	case project.FieldRepoURL, project.FieldIssuesURL, project.FieldHomepageURL:
		return validateURL
	case project.FieldLang:
		return func(s string) error {
			_, err := project.ParseLanguage(s)
			return err
		}
	case project.FieldLoader:
		return func(s string) error {
			_, err := project.ParseLoader(s)
			return err
		}
	}
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.Errorf("%s must not be blank", field)
		}
		return nil
	}
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return errors.Errorf("invalid url %q: %w", s, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.Errorf("invalid url %q: scheme and host are required", s)
	}
	return nil
}

func isURLField(field project.Field) bool {
	return field == project.FieldRepoURL || field == project.FieldIssuesURL || field == project.FieldHomepageURL
}

// 🙋 Asker shows one question to the user
type Asker interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// Option configures a Prompter
type Option func(*Prompter)

// WithAsker replaces the terminal form
func WithAsker(a Asker) Option {
	return func(p *Prompter) {
		p.asker = a
	}
}

// WithInteractive overrides terminal detection
func WithInteractive(interactive bool) Option {
	return func(p *Prompter) {
		p.interactive = interactive
	}
}

// 🎤 Prompter asks questions when a user is there to answer them and falls
// back to their defaults otherwise
type Prompter struct {
	asker       Asker
	interactive bool
}

// New creates a Prompter for the current terminal
func New(opts ...Option) *Prompter {
	p := &Prompter{
		asker:       FormAsker{Accessible: os.Getenv("ACCESSIBLE") != ""},
		interactive: IsTerminal(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether questions are shown to the user
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// 🚀 Ask answers each question in order. Answers are trimmed and checked
// with the question's validator.
func (p *Prompter) Ask(ctx context.Context, questions ...Question) (map[project.Field]string, error) {
	logger := zerolog.Ctx(ctx)
	answers := make(map[project.Field]string, len(questions))

	for _, q := range questions {
		var value string
		if p.interactive {
			answer, err := p.asker.Ask(ctx, q)
			if err != nil {
				return nil, err
			}
			value = strings.TrimSpace(answer)
			if value == "" {
				value = q.Default
			}
		} else {
			if q.Default == "" && q.Required {
				return nil, errors.Errorf("%s has no default: %w", q.Field, ErrNotInteractive)
			}
			value = q.Default
		}

		if err := q.check(value); err != nil {
			return nil, errors.Errorf("checking %s: %w", q.Field, err)
		}

		logger.Debug().Str("field", string(q.Field)).Str("value", value).Bool("interactive", p.interactive).Msg("answered")
		answers[q.Field] = value
	}
	return answers, nil
}

// 📝 FormAsker shows each question as its own huh form
type FormAsker struct {
	Accessible bool
}

func (a FormAsker) Ask(ctx context.Context, q Question) (string, error) {
	value := q.Default

	var field huh.Field
	if len(q.Options) > 0 {
		field = huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(huh.NewOptions(q.Options...)...).
			Value(&value)
	} else {
		input := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Value(&value).
			Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					s = q.Default
				}
				return q.check(s)
			})
		if q.Default != "" {
			input = input.Placeholder(q.Default)
		}
		field = input
	}

	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(a.Accessible)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", errors.Errorf("asking for %s: %w", q.Field, err)
	}
	return value, nil
}
