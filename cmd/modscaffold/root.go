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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/modscaffold/cmd/modscaffold/commands"
	"github.com/walteh/modscaffold/cmd/modscaffold/opts"
	"github.com/walteh/modscaffold/pkg/log"
)

// newRootCmd builds the command tree around shared options
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modscaffold",
		Short: "Create mod projects from template repositories",
		Long: `modscaffold clones a mod template, rewrites its placeholder names with
your project's values, and moves its packages into place.

Values you type for the maven group and the project URLs are remembered as
templates, so the next project starts with sensible suggestions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := setupLogging(cmd.Context(), o.Debug)
			if o.UserLogger == nil {
				level := zerolog.WarnLevel
				if o.Debug {
					level = zerolog.DebugLevel
				}
				o.UserLogger = log.New(cmd.OutOrStdout(), level)
			}
			cmd.SetContext(log.NewContext(ctx, o.UserLogger))
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewNewCmd(o),
		commands.NewInferCmd(o),
		commands.NewConfigCmd(o),
		commands.NewSourcesCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default $MODSCAFFOLD_CONFIG or the XDG config home)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
