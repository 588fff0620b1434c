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

// Package casing renders identifiers and titles in the handful of case styles
// a project template spells its placeholders in.
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// 🔠 Case is a rendering style for a piece of text
type Case int

const (
	None           Case = iota // verbatim
	SnakeCase                  // example_mod
	UpperCamelCase             // ExampleMod
	LowerCamelCase             // exampleMod
	KebabCase                  // example-mod
)

var caseNames = [...]string{
	None:           "none",
	SnakeCase:      "snake_case",
	UpperCamelCase: "upper_camel_case",
	LowerCamelCase: "lower_camel_case",
	KebabCase:      "kebab_case",
}

// 📋 All returns every case style in its fixed precedence order
func All() []Case {
	return []Case{None, SnakeCase, UpperCamelCase, LowerCamelCase, KebabCase}
}

// Valid reports whether c is one of the known styles
func (c Case) Valid() bool {
	return c >= None && c <= KebabCase
}

func (c Case) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return caseNames[c]
}

// 🔍 Parse converts a case name back into a Case. The empty string is None.
func Parse(name string) (Case, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == "" {
		return None, nil
	}
	for c, n := range caseNames {
		if n == normalized {
			return Case(c), nil
		}
	}
	return None, errors.Errorf("unknown case %q", name)
}

func (c Case) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Errorf("invalid case %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// 🎯 Format renders text in the given style
func Format(c Case, text string) string {
	return c.Format(text)
}

// Format renders text in this style. Every style except None is a fixed
// point of itself: formatting already formatted text returns it unchanged.
func (c Case) Format(text string) string {
	if c == None || !c.Valid() {
		return text
	}

	// each pass either reproduces its input or merges at least two words, so
	// this terminates in at most one pass per word
	current := c.render(text)
	for passes := utf8.RuneCountInString(current); passes >= 0; passes-- {
		next := c.render(current)
		if next == current {
			break
		}
		current = next
	}
	return current
}

func (c Case) render(text string) string {
	words := splitWords(norm.NFC.String(text))
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for i, word := range words {
		switch c {
		case SnakeCase, KebabCase:
			if i > 0 {
				if c == SnakeCase {
					b.WriteByte('_')
				} else {
					b.WriteByte('-')
				}
			}
			b.WriteString(lower.String(word))
		case UpperCamelCase:
			b.WriteString(capitalize(word))
		case LowerCamelCase:
			if i == 0 {
				b.WriteString(lower.String(word))
			} else {
				b.WriteString(capitalize(word))
			}
		}
	}
	return b.String()
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError && size <= 1 {
		return word
	}
	return string(unicode.ToUpper(first)) + cases.Lower(language.Und).String(word[size:])
}

type wordMode int

const (
	boundary wordMode = iota
	lowercase
	uppercase
)

// splitWords breaks text on every non-alphanumeric rune, then splits each
// remaining run on lower->upper transitions and before the last capital of
// an acronym that is followed by a lowercase letter (XMLHttp -> XML, Http).
// Digits carry the mode of the letter before them.
func splitWords(text string) []string {
	var words []string
	for _, field := range strings.FieldsFunc(text, isSeparator) {
		runes := []rune(field)
		start := 0
		mode := boundary
		for i, r := range runes {
			if i+1 == len(runes) {
				words = append(words, string(runes[start:]))
				break
			}
			next := runes[i+1]

			nextMode := mode
			if unicode.IsLower(r) {
				nextMode = lowercase
			} else if unicode.IsUpper(r) {
				nextMode = uppercase
			}

			switch {
			case nextMode == lowercase && unicode.IsUpper(next):
				words = append(words, string(runes[start:i+1]))
				start = i + 1
				mode = boundary
			case mode == uppercase && unicode.IsUpper(r) && unicode.IsLower(next):
				words = append(words, string(runes[start:i]))
				start = i
				mode = boundary
			default:
				mode = nextMode
			}
		}
	}
	return words
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsMark(r)
}
