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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/modscaffold/pkg/casing"
	"github.com/walteh/modscaffold/pkg/project"
	"github.com/walteh/modscaffold/pkg/template"
)

func fullConfig() *Config {
	cfg := Default()
	cfg.ProjectsDir = "/home/user/Projects"
	cfg.Author = "acme"
	cfg.Verbose = true
	cfg.Scaffolds[0].Ref = "latest-release"
	cfg.Scaffolds[0].Ignore = []string{".git/**", "**/*.bin"}

	p := project.New("My Cool Mod", project.Quilt, project.Java, "/projects")
	p.Author = "acme"
	cfg.SetTemplate(project.FieldRepoURL, template.Infer("https://github.com/acme/my-cool-mod", p))
	cfg.SetTemplate(project.FieldMavenGroup, template.Template{Fragments: []project.Value{
		project.Literal("io.github."),
		project.Ref(project.FieldAuthor, casing.SnakeCase),
	}})
	return cfg
}

func TestCodecSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Codec
	}{
		{name: "yaml_file", filename: "config.yaml", want: &YAMLCodec{}},
		{name: "yml_file", filename: "/etc/modscaffold/config.YML", want: &YAMLCodec{}},
		{name: "json_file", filename: "config.json", want: &JSONCodec{}},
		{name: "toml_file", filename: "config.toml", want: &TOMLCodec{}},
		{name: "hcl_file", filename: "config.hcl", want: &HCLCodec{}},
		{name: "unknown_file", filename: "config.ini", want: nil},
		{name: "no_extension", filename: "config", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetCodec(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, filename := range []string{"config.yaml", "config.json", "config.toml", "config.hcl"} {
		t.Run(filename, func(t *testing.T) {
			codec := GetCodec(filename)
			require.NotNil(t, codec)

			for name, cfg := range map[string]*Config{"default": Default(), "full": fullConfig(), "empty": {}} {
				data, err := codec.Encode(ctx, cfg)
				require.NoError(t, err, name)

				decoded, err := codec.Decode(ctx, data)
				require.NoError(t, err, "%s:\n%s", name, data)
				assert.Equal(t, cfg, decoded, "%s:\n%s", name, data)
			}
		})
	}
}

func TestCodec_RoundTripBehaviour(t *testing.T) {
	ctx := context.Background()
	original := fullConfig()

	p := project.New("Another Thing", project.Quilt, project.Java, "/projects")
	p.Author = "Bob Smith"

	wantTmpl, ok, err := original.Template(project.FieldRepoURL)
	require.NoError(t, err)
	require.True(t, ok)

	for _, filename := range []string{"config.yaml", "config.json", "config.toml", "config.hcl"} {
		t.Run(filename, func(t *testing.T) {
			codec := GetCodec(filename)
			data, err := codec.Encode(ctx, original)
			require.NoError(t, err)
			decoded, err := codec.Decode(ctx, data)
			require.NoError(t, err)

			gotTmpl, ok, err := decoded.Template(project.FieldRepoURL)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, wantTmpl.Fragments, gotTmpl.Fragments)
			assert.Equal(t, "https://github.com/Bob Smith/another-thing", gotTmpl.Format(p))

			group, ok, err := decoded.Template(project.FieldMavenGroup)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "io.github.bob_smith", group.Format(p))

			for i := range original.Scaffolds {
				want, err := original.Scaffolds[i].RuleSet()
				require.NoError(t, err)
				got, err := decoded.Scaffolds[i].RuleSet()
				require.NoError(t, err)
				require.Len(t, got.Rules, len(want.Rules))
				for j := range want.Rules {
					assert.Equal(t, want.Rules[j].Find, got.Rules[j].Find)
					assert.Equal(t, want.Rules[j].Replace, got.Rules[j].Replace)
					assert.Equal(t, want.Rules[j].File.String(), got.Rules[j].File.String())
				}
			}
		})
	}
}

func TestCodec_UnknownFields(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		data     string
	}{
		{name: "yaml", filename: "config.yaml", data: "author: acme\nbogus: true\n"},
		{name: "json", filename: "config.json", data: `{"author": "acme", "bogus": true}`},
		{name: "toml", filename: "config.toml", data: "author = \"acme\"\nbogus = true\n"},
		{name: "hcl", filename: "config.hcl", data: "author = \"acme\"\nbogus = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetCodec(tt.filename).Decode(ctx, []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestCodec_DecodeHandWritten(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		data     string
	}{
		{
			name:     "yaml",
			filename: "config.yaml",
			data: `
author: acme
scaffolds:
  - loader: quilt
    lang: java
    repository: https://example.com/template.git
    rules:
      - find: example_mod
        file:
          except: \.png$
        with:
          field: id
      - find: ExampleMod
        file:
          only: src/Main.java
        with:
          field: title
          case: upper_camel_case
      - find: "@VERSION@"
        with:
          text: "1.0.0"
`,
		},
		{
			name:     "hcl",
			filename: "config.hcl",
			data: `
author = "acme"

scaffold "quilt" "java" {
  repository = "https://example.com/template.git"

  rule {
    find = "example_mod"
    file {
      except = "\\.png$"
    }
    with {
      field = "id"
    }
  }

  rule {
    find = "ExampleMod"
    file {
      only = "src/Main.java"
    }
    with {
      field = "title"
      case  = "upper_camel_case"
    }
  }

  rule {
    find = "@VERSION@"
    with {
      text = "1.0.0"
    }
  }
}
`,
		},
		{
			name:     "toml",
			filename: "config.toml",
			data: `
author = "acme"

[[scaffolds]]
loader = "quilt"
lang = "java"
repository = "https://example.com/template.git"

[[scaffolds.rules]]
find = "example_mod"
file = { except = '\.png$' }
with = { field = "id" }

[[scaffolds.rules]]
find = "ExampleMod"
file = { only = "src/Main.java" }
with = { field = "title", case = "upper_camel_case" }

[[scaffolds.rules]]
find = "@VERSION@"
with = { text = "1.0.0" }
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GetCodec(tt.filename).Decode(ctx, []byte(tt.data))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, "acme", cfg.Author)

			s, err := cfg.Scaffold(project.Quilt, project.Java)
			require.NoError(t, err)
			rs, err := s.RuleSet()
			require.NoError(t, err)
			require.Len(t, rs.Rules, 3)

			assert.Equal(t, `\.png$`, rs.Rules[0].File.Except)
			assert.Equal(t, project.Ref(project.FieldID, casing.None), rs.Rules[0].Replace)
			assert.Equal(t, "src/Main.java", rs.Rules[1].File.Only)
			assert.Equal(t, project.Ref(project.FieldTitle, casing.UpperCamelCase), rs.Rules[1].Replace)
			assert.Equal(t, project.Literal("1.0.0"), rs.Rules[2].Replace)
		})
	}
}
