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

package config

import (
	"fmt"

	"github.com/walteh/modscaffold/pkg/casing"
	"github.com/walteh/modscaffold/pkg/matcher"
	"github.com/walteh/modscaffold/pkg/project"
	"github.com/walteh/modscaffold/pkg/replace"
	"github.com/walteh/modscaffold/pkg/template"
	"gitlab.com/tozd/go/errors"
)

// 📚 Config is the persisted state of modscaffold
type Config struct {
	ProjectsDir string          `json:"projects_dir,omitempty" yaml:"projects_dir,omitempty" toml:"projects_dir,omitempty" hcl:"projects_dir,optional"`
	Author      string          `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty" hcl:"author,optional"`
	Verbose     bool            `json:"verbose,omitempty" yaml:"verbose,omitempty" toml:"verbose,omitempty" hcl:"verbose,optional"`
	Templates   []TemplateEntry `json:"templates,omitempty" yaml:"templates,omitempty" toml:"templates,omitempty" hcl:"template,block"`
	Scaffolds   []Scaffold      `json:"scaffolds,omitempty" yaml:"scaffolds,omitempty" toml:"scaffolds,omitempty" hcl:"scaffold,block"`
}

// 🏗️ Scaffold is a template repository and the rules that adapt it
type Scaffold struct {
	Loader     string      `json:"loader" yaml:"loader" toml:"loader" hcl:"loader,label"`
	Lang       string      `json:"lang" yaml:"lang" toml:"lang" hcl:"lang,label"`
	Repository string      `json:"repository" yaml:"repository" toml:"repository" hcl:"repository"`
	Ref        string      `json:"ref,omitempty" yaml:"ref,omitempty" toml:"ref,omitempty" hcl:"ref,optional"`
	Ignore     []string    `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty" hcl:"ignore,optional"`
	Rules      []RuleEntry `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty" hcl:"rule,block"`
}

// 🔄 RuleEntry is the stored form of a replace.Rule
type RuleEntry struct {
	Find string     `json:"find" yaml:"find" toml:"find" hcl:"find"`
	File *FileEntry `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty" hcl:"file,block"`
	With ValueEntry `json:"with" yaml:"with" toml:"with" hcl:"with,block"`
}

// FileEntry is the stored form of a matcher.Matcher. A nil FileEntry
// matches every file.
type FileEntry struct {
	Only     string `json:"only,omitempty" yaml:"only,omitempty" toml:"only,omitempty" hcl:"only,optional"`
	Matching string `json:"matching,omitempty" yaml:"matching,omitempty" toml:"matching,omitempty" hcl:"matching,optional"`
	Except   string `json:"except,omitempty" yaml:"except,omitempty" toml:"except,omitempty" hcl:"except,optional"`
}

// ValueEntry is the stored form of a project.Value. With no field it is
// literal text; the zero ValueEntry is the empty literal.
type ValueEntry struct {
	Field string `json:"field,omitempty" yaml:"field,omitempty" toml:"field,omitempty" hcl:"field,optional"`
	Case  string `json:"case,omitempty" yaml:"case,omitempty" toml:"case,omitempty" hcl:"case,optional"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty" hcl:"text,optional"`
}

// 🧩 TemplateEntry is an inferred template for one project field
type TemplateEntry struct {
	Field     string       `json:"field" yaml:"field" toml:"field" hcl:"field,label"`
	Fragments []ValueEntry `json:"fragments,omitempty" yaml:"fragments,omitempty" toml:"fragments,omitempty" hcl:"fragment,block"`
}

// 🔍 Validate checks every scaffold and template can be used
func (cfg *Config) Validate() error {
	seen := map[string]bool{}
	for i := range cfg.Scaffolds {
		s := &cfg.Scaffolds[i]
		if _, err := s.RuleSet(); err != nil {
			return errors.Errorf("scaffold %d: %w", i, err)
		}
		if seen[s.Name()] {
			return errors.Errorf("scaffold %d: duplicate scaffold %s", i, s.Name())
		}
		seen[s.Name()] = true
	}

	fields := map[string]bool{}
	for _, t := range cfg.Templates {
		if _, err := t.Template(); err != nil {
			return errors.Errorf("template %s: %w", t.Field, err)
		}
		if fields[t.Field] {
			return errors.Errorf("duplicate template for %s", t.Field)
		}
		fields[t.Field] = true
	}

	return nil
}

// 🎯 Scaffold returns the scaffold for a loader and language
func (cfg *Config) Scaffold(loader project.Loader, lang project.Language) (*Scaffold, error) {
	for i := range cfg.Scaffolds {
		l, g, err := cfg.Scaffolds[i].Kind()
		if err != nil {
			return nil, err
		}
		if l == loader && g == lang {
			return &cfg.Scaffolds[i], nil
		}
	}
	return nil, errors.Errorf("no scaffold configured for %s %s", loader, lang)
}

// Template returns the stored template for field, if any
func (cfg *Config) Template(field project.Field) (template.Template, bool, error) {
	for _, t := range cfg.Templates {
		if t.Field == string(field) {
			tmpl, err := t.Template()
			if err != nil {
				return template.Template{}, false, err
			}
			return tmpl, true, nil
		}
	}
	return template.Template{}, false, nil
}

// SetTemplate stores tmpl for field, replacing any earlier template
func (cfg *Config) SetTemplate(field project.Field, tmpl template.Template) {
	entry := TemplateEntryOf(field, tmpl)
	for i := range cfg.Templates {
		if cfg.Templates[i].Field == string(field) {
			cfg.Templates[i] = entry
			return
		}
	}
	cfg.Templates = append(cfg.Templates, entry)
}

// compact drops empty collections so every codec decodes the same Config
func (cfg *Config) compact() {
	if len(cfg.Templates) == 0 {
		cfg.Templates = nil
	}
	if len(cfg.Scaffolds) == 0 {
		cfg.Scaffolds = nil
	}
	for i := range cfg.Templates {
		if len(cfg.Templates[i].Fragments) == 0 {
			cfg.Templates[i].Fragments = nil
		}
	}
	for i := range cfg.Scaffolds {
		s := &cfg.Scaffolds[i]
		if len(s.Ignore) == 0 {
			s.Ignore = nil
		}
		if len(s.Rules) == 0 {
			s.Rules = nil
		}
	}
}

// Name identifies the scaffold, e.g. "quilt/java"
func (s *Scaffold) Name() string {
	return fmt.Sprintf("%s/%s", s.Loader, s.Lang)
}

// Kind parses the loader and language labels
func (s *Scaffold) Kind() (project.Loader, project.Language, error) {
	loader, err := project.ParseLoader(s.Loader)
	if err != nil {
		return 0, 0, errors.Errorf("scaffold %s: %w", s.Name(), err)
	}
	lang, err := project.ParseLanguage(s.Lang)
	if err != nil {
		return 0, 0, errors.Errorf("scaffold %s: %w", s.Name(), err)
	}
	return loader, lang, nil
}

// 📜 RuleSet converts the stored rules and validates them
func (s *Scaffold) RuleSet() (replace.RuleSet, error) {
	if _, _, err := s.Kind(); err != nil {
		return replace.RuleSet{}, err
	}
	if s.Repository == "" {
		return replace.RuleSet{}, errors.Errorf("scaffold %s: repository is required", s.Name())
	}

	rs := replace.RuleSet{Name: s.Name(), Rules: make([]replace.Rule, 0, len(s.Rules))}
	for i, entry := range s.Rules {
		rule, err := entry.Rule()
		if err != nil {
			return replace.RuleSet{}, &replace.RuleError{Set: rs.Name, Index: i, Err: err}
		}
		rs.Rules = append(rs.Rules, rule)
	}
	if err := rs.Validate(); err != nil {
		return replace.RuleSet{}, err
	}
	return rs, nil
}

// Rule converts the entry into a replace.Rule
func (e RuleEntry) Rule() (replace.Rule, error) {
	value, err := e.With.Value()
	if err != nil {
		return replace.Rule{}, err
	}
	rule := replace.Rule{Find: e.Find, Replace: value}
	if e.File != nil {
		rule.File = matcher.Matcher{Only: e.File.Only, Matching: e.File.Matching, Except: e.File.Except}
	}
	return rule, nil
}

// RuleEntryOf converts a rule into its stored form
func RuleEntryOf(rule replace.Rule) RuleEntry {
	entry := RuleEntry{Find: rule.Find, With: ValueEntryOf(rule.Replace)}
	if rule.File.Only != "" || rule.File.Matching != "" || rule.File.Except != "" {
		entry.File = &FileEntry{Only: rule.File.Only, Matching: rule.File.Matching, Except: rule.File.Except}
	}
	return entry
}

// Value converts the entry into a project.Value
func (e ValueEntry) Value() (project.Value, error) {
	if e.Field == "" {
		if e.Case != "" {
			return project.Value{}, errors.Errorf("literal %q cannot have a case", e.Text)
		}
		return project.Literal(e.Text), nil
	}
	if e.Text != "" {
		return project.Value{}, errors.Errorf("field %s cannot also have text", e.Field)
	}
	field, err := project.ParseField(e.Field)
	if err != nil {
		return project.Value{}, err
	}
	c, err := casing.Parse(e.Case)
	if err != nil {
		return project.Value{}, err
	}
	return project.Ref(field, c), nil
}

// ValueEntryOf converts a value into its stored form
func ValueEntryOf(v project.Value) ValueEntry {
	if v.IsLiteral() {
		return ValueEntry{Text: v.Text}
	}
	entry := ValueEntry{Field: string(v.Field)}
	if v.Case != casing.None {
		entry.Case = v.Case.String()
	}
	return entry
}

// Template converts the entry into a template.Template
func (t TemplateEntry) Template() (template.Template, error) {
	if _, err := project.ParseField(t.Field); err != nil {
		return template.Template{}, err
	}
	tmpl := template.Template{Fragments: make([]project.Value, 0, len(t.Fragments))}
	for i, frag := range t.Fragments {
		v, err := frag.Value()
		if err != nil {
			return template.Template{}, errors.Errorf("fragment %d: %w", i, err)
		}
		tmpl.Fragments = append(tmpl.Fragments, v)
	}
	return tmpl, nil
}

// TemplateEntryOf converts a template into its stored form
func TemplateEntryOf(field project.Field, tmpl template.Template) TemplateEntry {
	entry := TemplateEntry{Field: string(field)}
	for _, frag := range tmpl.Fragments {
		entry.Fragments = append(entry.Fragments, ValueEntryOf(frag))
	}
	return entry
}
