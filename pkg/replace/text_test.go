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

package replace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/modscaffold/pkg/casing"
	"github.com/walteh/modscaffold/pkg/matcher"
	"github.com/walteh/modscaffold/pkg/project"
)

func testProject() *project.Project {
	p := project.New("My Cool Mod", project.Quilt, project.Java, "/projects")
	p.Author = "acme"
	p.MavenGroup = "io.github.acme"
	return p
}

func TestReplaceText(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		content   string
		rules     []Rule
		want      string
		wantCount int
	}{
		{
			name:    "literal_replacement",
			path:    "README.md",
			content: "Hello World",
			rules: []Rule{
				{Find: "World", Replace: project.Literal("Universe")},
			},
			want:      "Hello Universe",
			wantCount: 1,
		},
		{
			name:    "every_occurrence",
			path:    "README.md",
			content: "example_mod example_mod",
			rules: []Rule{
				{Find: "example_mod", Replace: project.Ref(project.FieldID, casing.None)},
			},
			want:      "my_cool_mod my_cool_mod",
			wantCount: 2,
		},
		{
			name:    "later_rules_see_earlier_output",
			path:    "a.txt",
			content: "A",
			rules: []Rule{
				{Find: "A", Replace: project.Literal("B")},
				{Find: "B", Replace: project.Literal("C")},
			},
			want:      "C",
			wantCount: 2,
		},
		{
			name:    "earlier_rules_do_not_see_later_output",
			path:    "a.txt",
			content: "A",
			rules: []Rule{
				{Find: "B", Replace: project.Literal("C")},
				{Find: "A", Replace: project.Literal("B")},
			},
			want:      "B",
			wantCount: 1,
		},
		{
			name:    "non_overlapping_leftmost",
			path:    "a.txt",
			content: "aaa",
			rules: []Rule{
				{Find: "aa", Replace: project.Literal("b")},
			},
			want:      "ba",
			wantCount: 1,
		},
		{
			name:    "matcher_excludes_file",
			path:    "gradlew",
			content: "example_mod",
			rules: []Rule{
				{File: matcher.Matcher{Except: `gradlew$`}, Find: "example_mod", Replace: project.Literal("x")},
			},
			want:      "example_mod",
			wantCount: 0,
		},
		{
			name:    "only_matcher_selects_nested_path",
			path:    "src/main/resources/fabric.mod.json",
			content: `"id": "example_mod"`,
			rules: []Rule{
				{File: matcher.Matcher{Only: "resources/fabric.mod.json"}, Find: "example_mod", Replace: project.Ref(project.FieldID, casing.None)},
			},
			want:      `"id": "my_cool_mod"`,
			wantCount: 1,
		},
		{
			name:    "cased_reference",
			path:    "Main.java",
			content: "class ExampleMod {}",
			rules: []Rule{
				{Find: "ExampleMod", Replace: project.Ref(project.FieldTitle, casing.UpperCamelCase)},
			},
			want:      "class MyCoolMod {}",
			wantCount: 1,
		},
		{
			name:    "absent_url_is_empty",
			path:    "build.gradle",
			content: "url = 'https://example.com'",
			rules: []Rule{
				{Find: "https://example.com", Replace: project.Ref(project.FieldRepoURL, casing.None)},
			},
			want:      "url = ''",
			wantCount: 1,
		},
		{
			name:      "no_rules",
			path:      "a.txt",
			content:   "unchanged",
			want:      "unchanged",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ReplaceText(tt.path, tt.content, tt.rules, testProject())
			require.NoError(t, err)
			assert.Equal(t, tt.content, result.OriginalContent)
			assert.Equal(t, tt.want, result.ModifiedContent)
			assert.Equal(t, tt.wantCount, result.ReplacementCount())
			assert.Equal(t, tt.want != tt.content, result.WasModified())
		})
	}
}

func TestReplaceText_InvalidMatcher(t *testing.T) {
	rules := []Rule{
		{File: matcher.Matcher{Matching: "("}, Find: "a", Replace: project.Literal("b")},
	}
	_, err := ReplaceText("a.txt", "a", rules, testProject())
	require.Error(t, err)

	var cfgErr *matcher.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRuleSet_Validate(t *testing.T) {
	tests := []struct {
		name      string
		rules     []Rule
		wantIndex int
		wantError bool
	}{
		{
			name: "valid",
			rules: []Rule{
				{Find: "a", Replace: project.Literal("b")},
				{File: *matcher.MustOnly("a.txt"), Find: "b", Replace: project.Ref(project.FieldTitle, casing.KebabCase)},
			},
		},
		{
			name: "empty_find",
			rules: []Rule{
				{Find: "a", Replace: project.Literal("b")},
				{Find: "", Replace: project.Literal("b")},
			},
			wantIndex: 1,
			wantError: true,
		},
		{
			name: "bad_regex",
			rules: []Rule{
				{File: matcher.Matcher{Except: "[a-"}, Find: "a", Replace: project.Literal("b")},
			},
			wantIndex: 0,
			wantError: true,
		},
		{
			name: "unknown_field",
			rules: []Rule{
				{Find: "a", Replace: project.Ref(project.Field("nope"), casing.None)},
			},
			wantIndex: 0,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RuleSet{Name: "test", Rules: tt.rules}.Validate()
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ruleErr *RuleError
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, "test", ruleErr.Set)
			assert.Equal(t, tt.wantIndex, ruleErr.Index)
		})
	}
}

func TestRuleSet_CompileDoesNotMutate(t *testing.T) {
	rs := RuleSet{Name: "test", Rules: []Rule{
		{File: matcher.Matcher{Matching: `\.java$`}, Find: "a", Replace: project.Literal("b")},
	}}
	original := rs.Rules[0]

	rules, err := rs.compile()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, original, rs.Rules[0])
}
