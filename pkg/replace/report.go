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

package replace

import (
	"context"

	"github.com/rs/zerolog"
)

// logReporter sends the run to the context logger
type logReporter struct{}

func (logReporter) RuleApplied(ctx context.Context, path, find, with string, count int) {
	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Str("find", find).
		Str("with", with).
		Int("count", count).
		Msg("rule applied")
}

func (logReporter) FileSkipped(ctx context.Context, path string, err error) {
	zerolog.Ctx(ctx).Warn().Str("file", path).Err(err).Msg("skipping unreadable file")
}

func (logReporter) FileProcessed(ctx context.Context, path, before, after string, written bool) {
	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Bool("modified", before != after).
		Bool("written", written).
		Msg("file processed")
}
