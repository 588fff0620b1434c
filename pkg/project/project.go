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

// Package project holds the record of values a new project is scaffolded
// with, and the symbolic references rules and templates use to reach them.
package project

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/walteh/modscaffold/pkg/casing"
	"gitlab.com/tozd/go/errors"
)

var (
	idPattern         = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// 📦 Project is the set of values available for substitution
type Project struct {
	Title         string
	ID            string
	MainClassName string
	MavenGroup    string
	Author        string
	RepoURL       *string
	IssuesURL     *string
	HomepageURL   *string
	Loader        Loader
	Lang          Language
	Path          string
}

// 🏭 New creates a project for the given title, deriving the id, main class
// name and on-disk path from it. Callers override any of them afterwards.
func New(title string, loader Loader, lang Language, projectsDir string) *Project {
	return &Project{
		Title:         title,
		ID:            casing.Format(casing.SnakeCase, title),
		MainClassName: casing.Format(casing.UpperCamelCase, title),
		Loader:        loader,
		Lang:          lang,
		Path:          filepath.Join(projectsDir, title),
	}
}

// 🔍 Validate checks the syntax of the identifiers the template embeds in
// source code and paths
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if err := ValidateID(p.ID); err != nil {
		return err
	}
	if err := ValidateClassName(p.MainClassName); err != nil {
		return err
	}
	if err := ValidateGroup(p.MavenGroup); err != nil {
		return err
	}
	if strings.TrimSpace(p.Author) == "" {
		return errors.New("author is required")
	}
	if !p.Loader.Valid() {
		return errors.Errorf("unknown loader %d", int(p.Loader))
	}
	if !p.Lang.Valid() {
		return errors.Errorf("unknown language %d", int(p.Lang))
	}
	return nil
}

// ValidateID checks a project id such as example_mod
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return errors.Errorf("invalid id %q: must match %s", id, idPattern)
	}
	return nil
}

// ValidateClassName checks a main class name such as ExampleMod
func ValidateClassName(name string) error {
	if !identifierPattern.MatchString(name) {
		return errors.Errorf("invalid main class name %q: must match %s", name, identifierPattern)
	}
	return nil
}

// ValidateGroup checks a dotted maven group such as com.example
func ValidateGroup(group string) error {
	if group == "" {
		return errors.New("maven group is required")
	}
	for _, segment := range strings.Split(group, ".") {
		if !identifierPattern.MatchString(segment) {
			return errors.Errorf("invalid maven group %q: segment %q must match %s", group, segment, identifierPattern)
		}
	}
	return nil
}

// GroupPath returns the maven group as a slash separated directory path
func (p *Project) GroupPath() string {
	return strings.ReplaceAll(p.MavenGroup, ".", "/")
}

// 🔗 SetURL fills one of the optional URL fields
func (p *Project) SetURL(field Field, value string) error {
	v := value
	switch field {
	case FieldRepoURL:
		p.RepoURL = &v
	case FieldIssuesURL:
		p.IssuesURL = &v
	case FieldHomepageURL:
		p.HomepageURL = &v
	default:
		return errors.Errorf("%s is not a url field", field)
	}
	return nil
}

// 🎯 Lookup returns the current value of a field. Absent optional fields are
// the empty string.
func (p *Project) Lookup(field Field) string {
	switch field {
	case FieldTitle:
		return p.Title
	case FieldID:
		return p.ID
	case FieldAuthor:
		return p.Author
	case FieldRepoURL:
		return deref(p.RepoURL)
	case FieldIssuesURL:
		return deref(p.IssuesURL)
	case FieldHomepageURL:
		return deref(p.HomepageURL)
	case FieldMavenGroup:
		return p.MavenGroup
	case FieldMainClassName:
		return p.MainClassName
	case FieldLoader:
		return p.Loader.String()
	case FieldLang:
		return p.Lang.String()
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
