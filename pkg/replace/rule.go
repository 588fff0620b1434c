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
	"github.com/walteh/modscaffold/pkg/matcher"
	"github.com/walteh/modscaffold/pkg/project"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule replaces every occurrence of Find in the files File selects
type Rule struct {
	File    matcher.Matcher
	Find    string
	Replace project.Value
}

// Validate checks the rule can be evaluated against any file
func (r Rule) Validate() error {
	if r.Find == "" {
		return errors.New("find text is required")
	}
	m := r.File
	if err := m.Compile(); err != nil {
		return err
	}
	if err := r.Replace.Validate(); err != nil {
		return errors.Errorf("replacement: %w", err)
	}
	return nil
}

// 📚 RuleSet is a named, ordered list of rules
type RuleSet struct {
	Name  string
	Rules []Rule
}

// Validate checks every rule, reporting the first invalid one
func (rs RuleSet) Validate() error {
	_, err := rs.compile()
	return err
}

// compile returns a private copy of the rules with their matchers compiled,
// leaving rs itself untouched
func (rs RuleSet) compile() ([]Rule, error) {
	rules := make([]Rule, len(rs.Rules))
	copy(rules, rs.Rules)
	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return nil, &RuleError{Set: rs.Name, Index: i, Err: err}
		}
		if err := rules[i].File.Compile(); err != nil {
			return nil, &RuleError{Set: rs.Name, Index: i, Err: err}
		}
	}
	return rules, nil
}
