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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🧩 Loader is the mod loader a template targets
type Loader int

const (
	Quilt Loader = iota + 1
)

var loaderNames = map[Loader]string{
	Quilt: "Quilt",
}

// Loaders lists every supported loader
func Loaders() []Loader {
	return []Loader{Quilt}
}

func (l Loader) Valid() bool {
	_, ok := loaderNames[l]
	return ok
}

func (l Loader) String() string {
	if name, ok := loaderNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLoader accepts a loader name in any letter case
func ParseLoader(name string) (Loader, error) {
	for l, n := range loaderNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return l, nil
		}
	}
	return 0, errors.Errorf("unknown loader %q", name)
}

func (l Loader) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.Errorf("invalid loader %d", int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Loader) UnmarshalText(text []byte) error {
	parsed, err := ParseLoader(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// 🗣️ Language is the source language of a template
type Language int

const (
	Java Language = iota + 1
	Kotlin
)

var languageNames = map[Language]string{
	Java:   "Java",
	Kotlin: "Kotlin",
}

// Languages lists every supported language
func Languages() []Language {
	return []Language{Java, Kotlin}
}

func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "unknown"
}

// SourceDir is the directory under src/main holding this language's sources
func (l Language) SourceDir() string {
	if l == Kotlin {
		return "kotlin"
	}
	return "java"
}

// FileExtension is the extension of this language's source files
func (l Language) FileExtension() string {
	if l == Kotlin {
		return "kt"
	}
	return "java"
}

// ParseLanguage accepts a language name in any letter case
func ParseLanguage(name string) (Language, error) {
	for l, n := range languageNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return l, nil
		}
	}
	return 0, errors.Errorf("unknown language %q", name)
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.Errorf("invalid language %d", int(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
