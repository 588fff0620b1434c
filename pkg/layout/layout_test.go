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

package layout

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/modscaffold/pkg/project"
)

type recorder struct {
	ops []string
}

func (r *recorder) Moved(ctx context.Context, from, to string) {
	r.ops = append(r.ops, "MOVE: "+from+" -> "+to)
}

func (r *recorder) Removed(ctx context.Context, path string) {
	r.ops = append(r.ops, "REMOVE: "+path)
}

const root = "/work/My Cool Mod"

func writeTree(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, afero.WriteFile(fs, full, []byte(content), 0o644))
	}
}

func exists(t *testing.T, fs afero.Fs, name string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return ok
}

func testProject(lang project.Language) *project.Project {
	p := project.New("My Cool Mod", project.Quilt, lang, "/work")
	p.MavenGroup = "io.github.acme"
	p.Author = "acme"
	return p
}

func javaTemplate() map[string]string {
	return map[string]string{
		".git/HEAD": "ref: refs/heads/main\n",
		"src/main/java/com/example/example_mod/ExampleMod.java":             "class MyCoolMod {}",
		"src/main/java/com/example/example_mod/mixin/TitleScreenMixin.java": "class TitleScreenMixin {}",
		"src/main/resources/assets/example_mod/icon.png":                    "png",
		"src/main/resources/example_mod.mixins.json":                        "{}",
		"src/main/resources/quilt.mod.json":                                 "{}",
	}
}

func TestPlan(t *testing.T) {
	steps := Plan(testProject(project.Kotlin), false)

	got := make([]string, 0, len(steps))
	for _, s := range steps {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{
		"REMOVE: .git",
		"MOVE: src/main/kotlin/com/example/example_mod -> src/main/kotlin/io/github/acme/my_cool_mod",
		"MOVE: src/main/kotlin/io/github/acme/my_cool_mod/ExampleMod.kt -> src/main/kotlin/io/github/acme/my_cool_mod/MyCoolMod.kt",
		"MOVE: src/main/java/com/example/example_mod/mixin -> src/main/java/io/github/acme/my_cool_mod/mixin",
		"MOVE: src/main/resources/assets/example_mod -> src/main/resources/assets/my_cool_mod",
		"MOVE: src/main/resources/example_mod.mixins.json -> src/main/resources/my_cool_mod.mixins.json",
	}, got)

	java := Plan(testProject(project.Java), true)
	require.Len(t, java, 4)
	assert.Equal(t, "moving source code", java[0].Name)
}

func TestApply_Java(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, javaTemplate())
	rec := &recorder{}

	err := New(WithFs(fs), WithReporter(rec)).Apply(context.Background(), root, testProject(project.Java))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"REMOVE: .git",
		"MOVE: src/main/java/com/example/example_mod -> src/main/java/io/github/acme/my_cool_mod",
		"MOVE: src/main/java/io/github/acme/my_cool_mod/ExampleMod.java -> src/main/java/io/github/acme/my_cool_mod/MyCoolMod.java",
		"MOVE: src/main/resources/assets/example_mod -> src/main/resources/assets/my_cool_mod",
		"MOVE: src/main/resources/example_mod.mixins.json -> src/main/resources/my_cool_mod.mixins.json",
		"REMOVE: src/main/java/com/example",
		"REMOVE: src/main/java/com",
	}, rec.ops)

	for _, want := range []string{
		"src/main/java/io/github/acme/my_cool_mod/MyCoolMod.java",
		"src/main/java/io/github/acme/my_cool_mod/mixin/TitleScreenMixin.java",
		"src/main/resources/assets/my_cool_mod/icon.png",
		"src/main/resources/my_cool_mod.mixins.json",
		"src/main/resources/quilt.mod.json",
	} {
		assert.True(t, exists(t, fs, want), want)
	}
	for _, gone := range []string{".git", "src/main/java/com", "src/main/resources/assets/example_mod", "src/main/resources/example_mod.mixins.json"} {
		assert.False(t, exists(t, fs, gone), gone)
	}

	content, err := afero.ReadFile(fs, filepath.Join(root, "src/main/java/io/github/acme/my_cool_mod/MyCoolMod.java"))
	require.NoError(t, err)
	assert.Equal(t, "class MyCoolMod {}", string(content))
}

func TestApply_Kotlin(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, map[string]string{
		"src/main/kotlin/com/example/example_mod/ExampleMod.kt":             "object MyCoolMod",
		"src/main/java/com/example/example_mod/mixin/TitleScreenMixin.java": "class TitleScreenMixin {}",
		"src/main/resources/assets/example_mod/icon.png":                    "png",
		"src/main/resources/example_mod.mixins.json":                        "{}",
	})

	err := New(WithFs(fs), WithReporter(&recorder{})).Apply(context.Background(), root, testProject(project.Kotlin))
	require.NoError(t, err)

	assert.True(t, exists(t, fs, "src/main/kotlin/io/github/acme/my_cool_mod/MyCoolMod.kt"))
	assert.True(t, exists(t, fs, "src/main/java/io/github/acme/my_cool_mod/mixin/TitleScreenMixin.java"))
	assert.False(t, exists(t, fs, "src/main/kotlin/com"))
	assert.False(t, exists(t, fs, "src/main/java/com"))
}

func TestApply_KeepGit(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, javaTemplate())

	err := New(WithFs(fs), WithReporter(&recorder{}), WithKeepGit(true)).Apply(context.Background(), root, testProject(project.Java))
	require.NoError(t, err)
	assert.True(t, exists(t, fs, ".git/HEAD"))
}

func TestApply_TemplateNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTree(t, fs, javaTemplate())
	rec := &recorder{}

	p := project.New("Example Mod", project.Quilt, project.Java, "/work")
	p.MavenGroup = "com.example"
	p.Author = "acme"

	require.NoError(t, New(WithFs(fs), WithReporter(rec)).Apply(context.Background(), root, p))
	assert.Equal(t, []string{"REMOVE: .git"}, rec.ops)
	assert.True(t, exists(t, fs, "src/main/java/com/example/example_mod/ExampleMod.java"))
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		drop    string
		group   string
		wantErr string
	}{
		{name: "missing_assets", drop: "src/main/resources/assets/example_mod/icon.png", group: "io.github.acme", wantErr: "moving assets"},
		{name: "missing_mixin_json", drop: "src/main/resources/example_mod.mixins.json", group: "io.github.acme", wantErr: "moving mixin json"},
		{name: "into_itself", group: "com.example.example_mod", wantErr: "into itself"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := javaTemplate()
			if tt.drop != "" {
				delete(files, tt.drop)
			}
			fs := afero.NewMemMapFs()
			writeTree(t, fs, files)

			p := testProject(project.Java)
			p.MavenGroup = tt.group

			err := New(WithFs(fs), WithReporter(&recorder{})).Apply(context.Background(), root, p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
