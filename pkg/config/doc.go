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
Package config persists what modscaffold remembers between runs.

	            +-------------+
	            |   Config    |
	            +------+------+
	                   |
	   +-------+-------+-------+-------+
	   |       |               |       |
	+--+--+ +--+--+         +--+--+ +--+--+
	| YAML| | JSON|         | TOML| | HCL |
	+-----+ +-----+         +-----+ +-----+

🎯 Purpose:
- Stores user preferences (projects directory, author, verbosity)
- Stores the templates inferred from values typed on earlier runs
- Stores one Scaffold per (loader, language): where to clone it from and
  the ordered rules that turn it into a new project

🔄 Flow:
1. Path resolves --config, then MODSCAFFOLD_CONFIG, then the XDG config home
2. Load picks a codec by file extension; a missing file yields Default()
3. Validate compiles every rule and template before anything touches disk
4. Save encodes with the same codec and replaces the file atomically

Every codec round-trips a Config exactly: rule order, matcher expressions and
empty template fragments all survive a write and a read.
*/
package config
