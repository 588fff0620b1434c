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

// Package template learns reusable value patterns from a single example. A
// repository URL typed for one project becomes a Template that renders the
// matching URL for the next one.
package template

import (
	"strings"

	"github.com/walteh/modscaffold/pkg/casing"
	"github.com/walteh/modscaffold/pkg/project"
)

// 🧩 Template is an ordered list of fragments. A fragment is either literal
// text or a reference to a project field in a case style.
type Template struct {
	Fragments []project.Value
}

// Pass is one step of inference: occurrences of Field rendered in Case are
// turned into references
type Pass struct {
	Field project.Field
	Case  casing.Case
}

// 📋 Passes is the fixed inference order. Earlier passes claim text first, so
// for ambiguous examples the order decides which reference wins.
var Passes = func() []Pass {
	fields := []project.Field{project.FieldTitle, project.FieldAuthor}
	passes := make([]Pass, 0, len(fields)*len(casing.All()))
	for _, f := range fields {
		for _, c := range casing.All() {
			passes = append(passes, Pass{Field: f, Case: c})
		}
	}
	return passes
}()

// 🔍 Infer builds a template that renders back to example for p. Only the
// title and author of p are ever recognised.
func Infer(example string, p *project.Project) Template {
	fragments := []project.Value{project.Literal(example)}

	for _, pass := range Passes {
		needle := casing.Format(pass.Case, p.Lookup(pass.Field))
		if needle == "" {
			continue
		}
		fragments = split(fragments, needle, project.Ref(pass.Field, pass.Case))
	}

	return Template{Fragments: fragments}
}

// split breaks every literal fragment on needle, putting ref between the
// pieces. Empty pieces are kept.
func split(fragments []project.Value, needle string, ref project.Value) []project.Value {
	out := make([]project.Value, 0, len(fragments))
	for _, frag := range fragments {
		if !frag.IsLiteral() || !strings.Contains(frag.Text, needle) {
			out = append(out, frag)
			continue
		}
		for i, piece := range strings.Split(frag.Text, needle) {
			if i > 0 {
				out = append(out, ref)
			}
			out = append(out, project.Literal(piece))
		}
	}
	return out
}

// 🎯 Format renders the template for p
func (t Template) Format(p *project.Project) string {
	var b strings.Builder
	for _, frag := range t.Fragments {
		b.WriteString(frag.Resolve(p))
	}
	return b.String()
}

// IsZero reports whether the template has no fragments
func (t Template) IsZero() bool {
	return len(t.Fragments) == 0
}

// Validate checks every fragment references a known field and case
func (t Template) Validate() error {
	for _, frag := range t.Fragments {
		if err := frag.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// References lists the fields the template depends on, in first-use order
func (t Template) References() []project.Field {
	var fields []project.Field
	seen := map[project.Field]bool{}
	for _, frag := range t.Fragments {
		if frag.IsLiteral() || seen[frag.Field] {
			continue
		}
		seen[frag.Field] = true
		fields = append(fields, frag.Field)
	}
	return fields
}

func (t Template) String() string {
	parts := make([]string, len(t.Fragments))
	for i, frag := range t.Fragments {
		parts[i] = frag.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
