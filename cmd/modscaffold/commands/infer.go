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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/walteh/modscaffold/cmd/modscaffold/opts"
	"github.com/walteh/modscaffold/pkg/log"
	"github.com/walteh/modscaffold/pkg/project"
	"github.com/walteh/modscaffold/pkg/template"
	"gitlab.com/tozd/go/errors"
)

var (
	literalStyle  = lipgloss.NewStyle().Faint(true)
	symbolicStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
)

// NewInferCmd creates the command that shows the template inferred from an
// example value
func NewInferCmd(o *opts.RootOpts) *cobra.Command {
	var (
		title  string
		author string
		save   string
	)

	cmd := &cobra.Command{
		Use:   "infer EXAMPLE",
		Short: "Show the template inferred from an example value",
		Long: `Infer splits an example value around every spelling of the title and
author it contains, and prints the resulting template and its rendering.

With --save FIELD the template is stored in the config and used to suggest
FIELD for the next project.`,
		Example: `  modscaffold infer --title "My Cool Mod" --author acme https://github.com/acme/my-cool-mod`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := &project.Project{Title: title, Author: author}
			tmpl := template.Infer(args[0], p)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("template:"), renderTemplate(tmpl))
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("renders: "), tmpl.Format(p))

			if save == "" {
				return nil
			}
			field, err := project.ParseField(save)
			if err != nil {
				return err
			}
			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			cfg.SetTemplate(field, tmpl)
			if err := o.SaveConfig(ctx, cfg); err != nil {
				return errors.Errorf("saving config: %w", err)
			}
			log.FromContext(ctx).Successf("saved %s template to %s", field, o.ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "project title to look for")
	cmd.Flags().StringVar(&author, "author", "", "author to look for")
	cmd.Flags().StringVar(&save, "save", "", "store the template for this field in the config")

	return cmd
}

func renderTemplate(tmpl template.Template) string {
	parts := make([]string, 0, len(tmpl.Fragments))
	for _, v := range tmpl.Fragments {
		if v.IsLiteral() {
			if v.Text == "" {
				continue
			}
			parts = append(parts, literalStyle.Render(v.Text))
			continue
		}
		parts = append(parts, symbolicStyle.Render(v.String()))
	}
	return strings.Join(parts, "")
}
