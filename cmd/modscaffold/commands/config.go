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

	"github.com/spf13/cobra"
	"github.com/walteh/modscaffold/cmd/modscaffold/opts"
	"github.com/walteh/modscaffold/pkg/config"
	"github.com/walteh/modscaffold/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewConfigCmd creates the command group for the persisted config
func NewConfigCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or reset the saved configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(o),
		newConfigPathCmd(o),
		newConfigResetCmd(o),
	)
	return cmd
}

func newConfigShowCmd(o *opts.RootOpts) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			name := o.ConfigPath()
			if format != "" {
				name = "config." + strings.TrimPrefix(strings.ToLower(format), ".")
			}
			codec := config.GetCodec(name)
			if codec == nil {
				return errors.Errorf("unknown format %q", format)
			}

			data, err := codec.Encode(ctx, cfg)
			if err != nil {
				return errors.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: yaml, json, toml or hcl (default: the config file's)")
	return cmd
}

func newConfigPathCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the configuration is stored",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), o.ConfigPath())
		},
	}
}

func newConfigResetCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the configuration with the built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := config.Reset(ctx, o.Fs, o.ConfigPath()); err != nil {
				return errors.Errorf("resetting config: %w", err)
			}
			log.FromContext(ctx).Successf("reset %s", o.ConfigPath())
			return nil
		},
	}
}
