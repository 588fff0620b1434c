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

package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/modscaffold/cmd/modscaffold/opts"
	"github.com/walteh/modscaffold/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// NewSourcesCmd creates the command that lists each scaffold's template and
// its latest release
func NewSourcesCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List template repositories and their latest releases",
		Long: `Sources prints every configured scaffold with its template repository,
the ref it is cloned at, and the newest release published on GitHub.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			resolver, err := o.GetResolver()
			if err != nil {
				return errors.Errorf("creating resolver: %w", err)
			}

			var repos []string
			seen := map[string]bool{}
			for _, sc := range cfg.Scaffolds {
				if !seen[sc.Repository] {
					seen[sc.Repository] = true
					repos = append(repos, sc.Repository)
				}
			}

			releases, err := source.LatestReleases(ctx, resolver, repos)
			if err != nil {
				return errors.Errorf("resolving releases: %w", err)
			}

			data := pterm.TableData{{"SCAFFOLD", "REPOSITORY", "REF", "LATEST RELEASE"}}
			for i := range cfg.Scaffolds {
				sc := &cfg.Scaffolds[i]
				ref := sc.Ref
				if ref == "" {
					ref = "default branch"
				}
				data = append(data, []string{sc.Name(), sc.Repository, ref, releases[sc.Repository]})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
