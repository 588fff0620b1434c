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

package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		style Case
		input string
		want  string
	}{
		{name: "none_is_verbatim", style: None, input: "Example Mod", want: "Example Mod"},
		{name: "snake_from_title", style: SnakeCase, input: "Example Mod", want: "example_mod"},
		{name: "upper_camel_from_title", style: UpperCamelCase, input: "Example Mod", want: "ExampleMod"},
		{name: "lower_camel_from_title", style: LowerCamelCase, input: "Example Mod", want: "exampleMod"},
		{name: "kebab_from_title", style: KebabCase, input: "Example Mod", want: "example-mod"},
		{name: "snake_from_camel", style: SnakeCase, input: "exampleMod", want: "example_mod"},
		{name: "kebab_from_snake", style: KebabCase, input: "my_cool_mod", want: "my-cool-mod"},
		{name: "acronym_split", style: SnakeCase, input: "XMLHttpRequest", want: "xml_http_request"},
		{name: "acronym_camel", style: UpperCamelCase, input: "XMLHttpRequest", want: "XmlHttpRequest"},
		{name: "digits_stay_attached", style: SnakeCase, input: "mod2go", want: "mod2go"},
		{name: "punctuation_separates", style: KebabCase, input: "hello.world/path", want: "hello-world-path"},
		{name: "leading_and_trailing_separators", style: SnakeCase, input: "__init__", want: "init"},
		{name: "empty_snake", style: SnakeCase, input: "", want: ""},
		{name: "empty_camel", style: UpperCamelCase, input: "", want: ""},
		{name: "single_char", style: UpperCamelCase, input: "a", want: "A"},
		{name: "unicode_letters_kept", style: UpperCamelCase, input: "café au lait", want: "CaféAuLait"},
		{name: "unicode_lowercased", style: SnakeCase, input: "Ärger Über", want: "ärger_über"},
		{name: "single_letter_words_merge", style: UpperCamelCase, input: "a b", want: "Ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.style, tt.input))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"A",
		"Example Mod",
		"example_mod",
		"ExampleMod",
		"exampleMod",
		"example-mod",
		"XMLHttpRequest",
		"a b",
		"a 2 b",
		"mod2go",
		"Mod 2 Go",
		"café au lait",
		"__init__",
		"  spaced   out  ",
		"ALL CAPS TITLE",
		"com.example.thing",
		"https://github.com/acme/my-cool-mod",
		"日本語 mod",
	}

	for _, style := range All() {
		for _, input := range inputs {
			t.Run(style.String()+"/"+input, func(t *testing.T) {
				once := Format(style, input)
				assert.Equal(t, once, Format(style, once))
			})
		}
	}
}

func TestFormat_AlreadyInStyleIsNoop(t *testing.T) {
	tests := map[Case]string{
		SnakeCase:      "example_mod",
		UpperCamelCase: "ExampleMod",
		LowerCamelCase: "exampleMod",
		KebabCase:      "example-mod",
	}
	for style, input := range tests {
		assert.Equal(t, input, Format(style, input), style.String())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Case
		wantError string
	}{
		{name: "snake", input: "snake_case", want: SnakeCase},
		{name: "kebab_with_dash", input: "kebab-case", want: KebabCase},
		{name: "mixed_case", input: "Upper_Camel_Case", want: UpperCamelCase},
		{name: "empty_is_none", input: "", want: None},
		{name: "none", input: "none", want: None},
		{name: "unknown", input: "title_case", wantError: "unknown case"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCase_TextRoundTrip(t *testing.T) {
	for _, c := range All() {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back Case
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}

	_, err := Case(42).MarshalText()
	require.Error(t, err)
}
