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
Package layout renames the template's placeholder paths once its file
contents have been rewritten.

🎯 Purpose:
- Turn the template's example package and resource names into the project's
- Drop the template's git history

🔄 Flow:
1. Plan builds the ordered list of steps for a project
2. Apply runs them against an afero.Fs rooted at the project directory
3. Each step is reported through a Reporter as a move or a removal

📝 The order is fixed: the main class lives inside the package directory, so
the package directory moves first and the class is renamed in its new home.
*/
package layout
