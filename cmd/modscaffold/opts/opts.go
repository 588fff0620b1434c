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

package opts

import (
	"context"

	"github.com/spf13/afero"
	"github.com/walteh/modscaffold/pkg/config"
	"github.com/walteh/modscaffold/pkg/log"
	"github.com/walteh/modscaffold/pkg/operation"
	"github.com/walteh/modscaffold/pkg/prompt"
	"github.com/walteh/modscaffold/pkg/source"
)

// 🔧 RootOpts contains dependencies shared by every command. Nil fields get
// their production implementation on first use.
type RootOpts struct {
	ConfigFile string
	Debug      bool

	Fs         afero.Fs
	UserLogger *log.Logger
	Prompter   *prompt.Prompter
	Cloner     operation.Cloner
	Resolver   source.Resolver
}

// New creates options backed by the OS
func New() *RootOpts {
	return &RootOpts{Fs: afero.NewOsFs()}
}

// ConfigPath is where the config is read from and saved to
func (o *RootOpts) ConfigPath() string {
	return config.Path(o.ConfigFile)
}

// 📚 LoadConfig reads the config, falling back to the defaults
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	return config.Load(ctx, o.Fs, o.ConfigPath())
}

// 💾 SaveConfig writes cfg back to ConfigPath
func (o *RootOpts) SaveConfig(ctx context.Context, cfg *config.Config) error {
	return config.Save(ctx, o.Fs, o.ConfigPath(), cfg)
}

// GetResolver returns the release resolver
func (o *RootOpts) GetResolver() (source.Resolver, error) {
	if o.Resolver == nil {
		r, err := source.NewGitHubResolver()
		if err != nil {
			return nil, err
		}
		o.Resolver = r
	}
	return o.Resolver, nil
}

// GetCloner returns the template cloner
func (o *RootOpts) GetCloner() (operation.Cloner, error) {
	if o.Cloner == nil {
		r, err := o.GetResolver()
		if err != nil {
			return nil, err
		}
		o.Cloner = source.NewCloner(r)
	}
	return o.Cloner, nil
}

// GetPrompter returns the prompter for missing values
func (o *RootOpts) GetPrompter() *prompt.Prompter {
	if o.Prompter == nil {
		o.Prompter = prompt.New()
	}
	return o.Prompter
}
