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
	"strings"

	"github.com/walteh/modscaffold/pkg/project"
	"gitlab.com/tozd/go/errors"
)

// 📝 Applied records one rule whose matcher selected a file
type Applied struct {
	Find  string // literal text searched for
	With  string // resolved replacement text
	Count int    // occurrences replaced
}

// 📊 Result holds the outcome of folding a rule list over one file's content
type Result struct {
	OriginalContent string
	ModifiedContent string
	Applied         []Applied
}

// WasModified reports whether any rule changed the content
func (r *Result) WasModified() bool {
	return r.OriginalContent != r.ModifiedContent
}

// ReplacementCount is the total number of occurrences replaced
func (r *Result) ReplacementCount() int {
	total := 0
	for _, a := range r.Applied {
		total += a.Count
	}
	return total
}

// 🔁 ReplaceText applies rules to the content of the file at relPath, in
// order. Each rule replaces every non-overlapping occurrence, leftmost first,
// in the output of the rule before it.
func ReplaceText(relPath, content string, rules []Rule, p *project.Project) (*Result, error) {
	result := &Result{
		OriginalContent: content,
	}

	current := content
	for i, rule := range rules {
		// Skip empty rules
		if rule.Find == "" {
			continue
		}

		ok, err := rule.File.Matches(relPath)
		if err != nil {
			return nil, errors.Errorf("matching rule %d: %w", i, err)
		}
		if !ok {
			continue
		}

		with := rule.Replace.Resolve(p)
		count := strings.Count(current, rule.Find)
		current = strings.ReplaceAll(current, rule.Find, with)

		result.Applied = append(result.Applied, Applied{
			Find:  rule.Find,
			With:  with,
			Count: count,
		})
	}

	result.ModifiedContent = current
	return result, nil
}
