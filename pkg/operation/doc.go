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
Package operation runs one scaffold from template checkout to finished
project.

🎯 Purpose:
- Pick the scaffold for the project's loader and language
- Check out its template, rewrite it, and move its paths into place
- Learn templates from the values the user typed so the next project can
  suggest them

🔄 Flow:
1. Validate the project and the scaffold's rule set
2. Clone the template into the project directory (a scratch directory in
   dry runs)
3. Rewrite every file with the rule set
4. Run the layout steps, unless this is a dry run

🤝 Interfaces:
- Cloner: source of the template checkout
- Reporter: receives every rewrite and path operation

🔍 Example:

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Cloner:   source.NewCloner(resolver),
		Reporter: userLogger,
	})
	result, err := op.Run(ctx, proj)
*/
package operation
