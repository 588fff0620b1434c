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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrPathEncoding is returned when a path under the root is not valid
	// UTF-8 and so cannot be matched against rules
	ErrPathEncoding = errors.Base("path is not valid UTF-8")

	// ErrNotText marks file contents that are not valid UTF-8
	ErrNotText = errors.Base("content is not valid UTF-8 text")
)

// 📛 RuleError reports a rule that cannot be applied to any file
type RuleError struct {
	Set   string
	Index int
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule set %q: rule %d: %v", e.Set, e.Index, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// 📄 UnreadableFileError describes a file the engine skipped. It is handed to
// the Reporter and never returned from Apply.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}

// 💥 WriteError aborts a run when a rewritten file cannot be stored
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
