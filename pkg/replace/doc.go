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

/*
Package replace rewrites the text files of a template tree with an ordered
set of literal substitutions.

	+-----------+     +---------+     +-------------------+
	| RuleSet   | --> | Engine  | --> | files under root  |
	| (ordered) |     | (walk)  |     | (rewritten)       |
	+-----------+     +----+----+     +-------------------+
	                       |
	                       v
	                  Reporter (verbose lines, skips, diffs)

🔄 Flow, per regular file:
 1. read the whole file; unreadable or non UTF-8 files are reported and skipped
 2. fold the rules over the content in listed order, each rule seeing the
    output of the rules before it
 3. write the result back; a failed write aborts the run

⚠️ Rules are not isolated from each other. A rule's find text can match text
an earlier rule inserted, so rule sets must be ordered with that in mind.
Rules only ever touch file contents, never file names.
*/
package replace
