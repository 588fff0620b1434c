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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/modscaffold/pkg/config"
	"github.com/walteh/modscaffold/pkg/project"
)

func TestLearnAndSuggest(t *testing.T) {
	cfg := config.Default()
	p := testProject()

	learned := Learn(cfg, p, LearnedFields...)
	assert.Equal(t, []project.Field{project.FieldMavenGroup, project.FieldRepoURL, project.FieldIssuesURL}, learned)
	require.NoError(t, cfg.Validate())

	next := project.New("Other Thing", project.Quilt, project.Kotlin, "/projects")
	next.Author = "bob"

	tests := []struct {
		field  project.Field
		want   string
		wantOK bool
	}{
		{field: project.FieldMavenGroup, want: "io.github.bob", wantOK: true},
		{field: project.FieldRepoURL, want: "https://github.com/bob/other-thing", wantOK: true},
		{field: project.FieldIssuesURL, want: "https://github.com/bob/other-thing/issues", wantOK: true},
		{field: project.FieldHomepageURL, want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			got, ok, err := Suggest(cfg, tt.field, next)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLearn_KeepsOldTemplate(t *testing.T) {
	cfg := config.Default()
	Learn(cfg, testProject(), project.FieldRepoURL)

	p := testProject()
	p.RepoURL = nil
	assert.Empty(t, Learn(cfg, p, project.FieldRepoURL))

	_, ok, err := cfg.Template(project.FieldRepoURL)
	require.NoError(t, err)
	assert.True(t, ok)
}
