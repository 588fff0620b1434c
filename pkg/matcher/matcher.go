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

// Package matcher decides which files of a template tree a substitution
// rule applies to.
package matcher

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// ⚠️ ConfigError reports a matcher that can never be evaluated
type ConfigError struct {
	Field string
	Expr  string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Expr == "" {
		return "invalid matcher " + e.Field + ": " + e.Err.Error()
	}
	return "invalid matcher " + e.Field + " " + quote(e.Expr) + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

// ErrNotUTF8 is returned for paths that cannot be evaluated as text
var ErrNotUTF8 = errors.Base("path is not valid UTF-8")

// 🎯 Matcher selects files by their path relative to the template root.
//
// The zero Matcher matches every file. Only takes precedence over the
// regular expressions when set.
type Matcher struct {
	Matching string // optional inclusion regex
	Except   string // optional exclusion regex
	Only     string // optional exact relative path, matched on path boundaries

	matching *regexp.Regexp
	except   *regexp.Regexp
	compiled bool
}

// All matches every file whose path matches the matching expression (if any)
// and does not match the except expression (if any). Empty expressions are
// treated as absent.
func All(matching, except string) (*Matcher, error) {
	m := &Matcher{Matching: matching, Except: except}
	if err := m.Compile(); err != nil {
		return nil, err
	}
	return m, nil
}

// Only matches exactly one relative path, wherever it sits in the tree.
func Only(relPath string) (*Matcher, error) {
	m := &Matcher{Only: relPath}
	if err := m.Compile(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustAll is All for expressions known to be valid
func MustAll(matching, except string) *Matcher {
	m, err := All(matching, except)
	if err != nil {
		panic(err)
	}
	return m
}

// MustOnly is Only for paths known to be valid
func MustOnly(relPath string) *Matcher {
	m, err := Only(relPath)
	if err != nil {
		panic(err)
	}
	return m
}

// IsOnly reports whether m is the exact-path form
func (m *Matcher) IsOnly() bool {
	return m.Only != ""
}

// 🔧 Compile validates and caches the regular expressions. It is safe to
// call more than once.
func (m *Matcher) Compile() error {
	if m.compiled {
		return nil
	}

	if m.IsOnly() {
		if m.Matching != "" || m.Except != "" {
			return &ConfigError{Field: "only", Expr: m.Only, Err: errors.New("only cannot be combined with matching or except")}
		}
		if !utf8.ValidString(m.Only) {
			return &ConfigError{Field: "only", Err: ErrNotUTF8}
		}
		if normalize(m.Only) == "" {
			return &ConfigError{Field: "only", Expr: m.Only, Err: errors.New("path is empty")}
		}
		m.compiled = true
		return nil
	}

	var err error
	if m.Matching != "" {
		if m.matching, err = regexp.Compile(m.Matching); err != nil {
			return &ConfigError{Field: "matching", Expr: m.Matching, Err: err}
		}
	}
	if m.Except != "" {
		if m.except, err = regexp.Compile(m.Except); err != nil {
			return &ConfigError{Field: "except", Expr: m.Except, Err: err}
		}
	}
	m.compiled = true
	return nil
}

// 🔍 Matches reports whether the rule applies to relPath, a path relative to
// the template root in either platform or slash form.
func (m *Matcher) Matches(relPath string) (bool, error) {
	if err := m.Compile(); err != nil {
		return false, err
	}
	if !utf8.ValidString(relPath) {
		return false, errors.Errorf("matching %q: %w", relPath, ErrNotUTF8)
	}

	p := normalize(relPath)

	if m.IsOnly() {
		suffix := normalize(m.Only)
		return p == suffix || strings.HasSuffix(p, "/"+suffix), nil
	}

	if m.matching != nil && !m.matching.MatchString(p) {
		return false, nil
	}
	if m.except != nil && m.except.MatchString(p) {
		return false, nil
	}
	return true, nil
}

func (m *Matcher) String() string {
	if m.IsOnly() {
		return "only " + m.Only
	}
	switch {
	case m.Matching != "" && m.Except != "":
		return "files matching " + m.Matching + " except " + m.Except
	case m.Matching != "":
		return "files matching " + m.Matching
	case m.Except != "":
		return "all files except " + m.Except
	}
	return "all files"
}

// normalize turns a platform path into the portable form rules are written
// against: forward slashes, no leading "./" or "/", cleaned.
func normalize(p string) string {
	p = filepath.ToSlash(p)
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}
