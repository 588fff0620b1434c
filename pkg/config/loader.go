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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

const (
	// EnvConfig overrides the default config location
	EnvConfig = "MODSCAFFOLD_CONFIG"

	appName        = "modscaffold"
	configFileName = "config.yaml"
)

// ⚠️ LoadError reports a config file that exists but cannot be used
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "loading config " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// 📍 Path resolves where the config lives: the explicit path if given, then
// $MODSCAFFOLD_CONFIG, then the XDG config home
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// 🎯 Load reads and validates the config at path. A missing file yields
// Default().
func Load(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	codec := GetCodec(path)
	if codec == nil {
		return nil, &LoadError{Path: path, Err: errors.Errorf("no codec for file extension %q", filepath.Ext(path))}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("config not found, using defaults")
			return Default(), nil
		}
		return nil, &LoadError{Path: path, Err: errors.Errorf("reading config file: %w", err)}
	}

	cfg, err := codec.Decode(ctx, data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Err: errors.Errorf("validating config: %w", err)}
	}

	return cfg, nil
}

// 💾 Save encodes cfg with the codec for path and replaces the file
// atomically, creating parent directories as needed
func Save(ctx context.Context, fs afero.Fs, path string, cfg *Config) error {
	logger := zerolog.Ctx(ctx)

	codec := GetCodec(path)
	if codec == nil {
		return errors.Errorf("no codec for file extension %q", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}

	data, err := codec.Encode(ctx, cfg)
	if err != nil {
		return errors.Errorf("encoding config: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Errorf("creating config directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := afero.WriteFile(fs, tempPath, data, 0o644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := fs.Rename(tempPath, path); err != nil {
		_ = fs.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("saved configuration")
	return nil
}

// Reset replaces the config at path with the defaults
func Reset(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if err := Save(ctx, fs, path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
