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
	"bytes"
	"context"

	"github.com/pelletier/go-toml/v2"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&TOMLCodec{})
}

// 🔧 TOMLCodec implements the Codec interface for TOML files
type TOMLCodec struct{}

func (c *TOMLCodec) CanParse(filename string) bool {
	return hasExt(filename, ".toml")
}

func (c *TOMLCodec) Decode(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing TOML: %w", err)
	}
	cfg.compact()
	return &cfg, nil
}

func (c *TOMLCodec) Encode(ctx context.Context, cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(cfg); err != nil {
		return nil, errors.Errorf("encoding TOML: %w", err)
	}
	return buf.Bytes(), nil
}
