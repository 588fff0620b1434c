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
	"path/filepath"
	"strings"
)

// 🔌 Codec reads and writes a Config in one file format
type Codec interface {
	// 📝 Decode parses a config from bytes
	Decode(ctx context.Context, data []byte) (*Config, error)

	// 💾 Encode renders a config as bytes
	Encode(ctx context.Context, cfg *Config) ([]byte, error)

	// 🔍 CanParse checks if this codec handles the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ codecs is a list of available codecs
	codecs []Codec
)

// 📝 Register registers a codec
func Register(c Codec) {
	codecs = append(codecs, c)
}

// 🎯 GetCodec returns a codec that can handle the given file
func GetCodec(filename string) Codec {
	for _, c := range codecs {
		if c.CanParse(filename) {
			return c
		}
	}
	return nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
