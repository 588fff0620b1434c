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
	"github.com/walteh/modscaffold/pkg/casing"
	"github.com/walteh/modscaffold/pkg/matcher"
	"github.com/walteh/modscaffold/pkg/project"
	"github.com/walteh/modscaffold/pkg/replace"
)

const (
	QuiltJavaRepository   = "https://github.com/QuiltMC/quilt-template-mod.git"
	QuiltKotlinRepository = "https://github.com/QuiltMC/quilt-kotlin-template-mod.git"

	// templateExcludes are files the Quilt templates ship that must never be
	// rewritten
	templateExcludes = `(\.jar)|(gradlew)|(gradlew.bat)|(README.md)|(.editorconfig)|(.gitignore)|(gradle-wrapper.properties)|(\.png)|(LICENSE-TEMPLATE.md)|(.gitattributes)$`

	modJSON = "quilt.mod.json"
)

// 🏭 Default is the configuration used when none has been saved yet
func Default() *Config {
	return &Config{
		Scaffolds: []Scaffold{
			scaffold(project.Quilt, project.Java, QuiltJavaRepository, quiltJavaRules()),
			scaffold(project.Quilt, project.Kotlin, QuiltKotlinRepository, quiltKotlinRules()),
		},
	}
}

func scaffold(loader project.Loader, lang project.Language, repo string, rules []replace.Rule) Scaffold {
	s := Scaffold{
		Loader:     loaderName(loader),
		Lang:       langName(lang),
		Repository: repo,
	}
	for _, rule := range rules {
		s.Rules = append(s.Rules, RuleEntryOf(rule))
	}
	return s
}

func loaderName(l project.Loader) string {
	text, _ := l.MarshalText()
	return string(text)
}

func langName(l project.Language) string {
	text, _ := l.MarshalText()
	return string(text)
}

func everyTemplateFile(find string, with project.Value) replace.Rule {
	return replace.Rule{File: matcher.Matcher{Except: templateExcludes}, Find: find, Replace: with}
}

func modJSONOnly(find string, with project.Value) replace.Rule {
	return replace.Rule{File: matcher.Matcher{Only: modJSON}, Find: find, Replace: with}
}

func quiltCommonRules() []replace.Rule {
	return []replace.Rule{
		everyTemplateFile("com.example", project.Ref(project.FieldMavenGroup, casing.None)),
		everyTemplateFile("Example Mod", project.Ref(project.FieldTitle, casing.None)),
		everyTemplateFile("example_mod", project.Ref(project.FieldID, casing.None)),
		everyTemplateFile("ExampleMod", project.Ref(project.FieldMainClassName, casing.None)),
		everyTemplateFile("exampleMod", project.Ref(project.FieldMainClassName, casing.LowerCamelCase)),
	}
}

func quiltJavaRules() []replace.Rule {
	return append(quiltCommonRules(),
		modJSONOnly("Your name here", project.Ref(project.FieldAuthor, casing.None)),
		modJSONOnly("https://example.com/", project.Ref(project.FieldHomepageURL, casing.None)),
		modJSONOnly("https://github.com/QuiltMC/quilt-template-mod/issues", project.Ref(project.FieldIssuesURL, casing.None)),
		modJSONOnly("https://github.com/QuiltMC/quilt-template-mod", project.Ref(project.FieldRepoURL, casing.None)),
	)
}

// the kotlin template names its mod by repository slug, which is only safe to
// replace once the repository URLs are gone
func quiltKotlinRules() []replace.Rule {
	return append(quiltCommonRules(),
		modJSONOnly("Mod Name", project.Ref(project.FieldTitle, casing.None)),
		modJSONOnly("Your name here", project.Ref(project.FieldAuthor, casing.None)),
		modJSONOnly("https://example.com/", project.Ref(project.FieldHomepageURL, casing.None)),
		modJSONOnly("https://github.com/QuiltMC/quilt-kotlin-template-mod/issues", project.Ref(project.FieldIssuesURL, casing.None)),
		modJSONOnly("https://github.com/QuiltMC/quilt-kotlin-template-mod", project.Ref(project.FieldRepoURL, casing.None)),
		everyTemplateFile("quilt-kotlin-template-mod", project.Ref(project.FieldID, casing.None)),
	)
}
