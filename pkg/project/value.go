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

package project

import (
	"fmt"
	"strings"

	"github.com/walteh/modscaffold/pkg/casing"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Field names one value of a Project
type Field string

const (
	FieldTitle         Field = "title"
	FieldID            Field = "id"
	FieldAuthor        Field = "author"
	FieldRepoURL       Field = "repo_url"
	FieldIssuesURL     Field = "issues_url"
	FieldHomepageURL   Field = "homepage_url"
	FieldMavenGroup    Field = "maven_group"
	FieldMainClassName Field = "main_class_name"
	FieldLoader        Field = "loader"
	FieldLang          Field = "lang"
)

// Fields lists every field a Value may reference
func Fields() []Field {
	return []Field{
		FieldTitle,
		FieldID,
		FieldAuthor,
		FieldRepoURL,
		FieldIssuesURL,
		FieldHomepageURL,
		FieldMavenGroup,
		FieldMainClassName,
		FieldLoader,
		FieldLang,
	}
}

func (f Field) Valid() bool {
	for _, known := range Fields() {
		if f == known {
			return true
		}
	}
	return false
}

// ParseField converts a field name into a Field
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", errors.Errorf("unknown field %q", name)
	}
	return f, nil
}

// 💎 Value is either literal text or a reference to a Project field rendered
// in a case style. The zero Value is the empty literal.
type Value struct {
	Field Field       // empty for literal text
	Case  casing.Case // ignored for literal text
	Text  string      // only set for literal text
}

// Literal creates a Value that always resolves to text
func Literal(text string) Value {
	return Value{Text: text}
}

// Ref creates a Value that resolves to field rendered in style c
func Ref(field Field, c casing.Case) Value {
	return Value{Field: field, Case: c}
}

// IsLiteral reports whether v carries its own text
func (v Value) IsLiteral() bool {
	return v.Field == ""
}

// 🎯 Resolve renders v against the given project
func (v Value) Resolve(p *Project) string {
	if v.IsLiteral() {
		return v.Text
	}
	return casing.Format(v.Case, p.Lookup(v.Field))
}

// Validate rejects references to unknown fields or case styles
func (v Value) Validate() error {
	if v.IsLiteral() {
		return nil
	}
	if !v.Field.Valid() {
		return errors.Errorf("unknown field %q", string(v.Field))
	}
	if !v.Case.Valid() {
		return errors.Errorf("unknown case %d for field %s", int(v.Case), v.Field)
	}
	return nil
}

func (v Value) String() string {
	if v.IsLiteral() {
		return fmt.Sprintf("%q", v.Text)
	}
	return fmt.Sprintf("{%s:%s}", v.Field, v.Case)
}
