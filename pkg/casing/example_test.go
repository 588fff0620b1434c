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

package casing_test

import (
	"fmt"

	"github.com/walteh/modscaffold/pkg/casing"
)

func ExampleFormat() {
	for _, c := range casing.All() {
		fmt.Printf("%s: %s\n", c, casing.Format(c, "Example Mod"))
	}

	// Output:
	// none: Example Mod
	// snake_case: example_mod
	// upper_camel_case: ExampleMod
	// lower_camel_case: exampleMod
	// kebab_case: example-mod
}
