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
	"github.com/walteh/modscaffold/pkg/config"
	"github.com/walteh/modscaffold/pkg/project"
	"github.com/walteh/modscaffold/pkg/template"
)

// LearnedFields are the fields whose values are remembered as templates
var LearnedFields = []project.Field{
	project.FieldMavenGroup,
	project.FieldRepoURL,
	project.FieldIssuesURL,
	project.FieldHomepageURL,
}

// 💡 Suggest renders the stored template for field against p. ok is false
// when no template has been learned yet.
func Suggest(cfg *config.Config, field project.Field, p *project.Project) (value string, ok bool, err error) {
	tmpl, found, err := cfg.Template(field)
	if err != nil || !found {
		return "", false, err
	}
	return tmpl.Format(p), true, nil
}

// 🧠 Learn infers a template from p's value of each field and stores it in
// cfg. Fields with no value keep their old template. It returns the fields
// that were learned.
func Learn(cfg *config.Config, p *project.Project, fields ...project.Field) []project.Field {
	var learned []project.Field
	for _, field := range fields {
		value := p.Lookup(field)
		if value == "" {
			continue
		}
		cfg.SetTemplate(field, template.Infer(value, p))
		learned = append(learned, field)
	}
	return learned
}
