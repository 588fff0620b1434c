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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLCodec{})
}

// 🔧 HCLCodec implements the Codec interface for HCL files
type HCLCodec struct{}

func (c *HCLCodec) CanParse(filename string) bool {
	return hasExt(filename, ".hcl")
}

func (c *HCLCodec) Decode(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	cfg.compact()
	return &cfg, nil
}

// Encode writes blocks by hand so empty attributes are left out, matching
// what the other codecs omit
func (c *HCLCodec) Encode(ctx context.Context, cfg *Config) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	setString(body, "projects_dir", cfg.ProjectsDir)
	setString(body, "author", cfg.Author)
	if cfg.Verbose {
		body.SetAttributeValue("verbose", cty.True)
	}

	for _, t := range cfg.Templates {
		body.AppendNewline()
		block := body.AppendNewBlock("template", []string{t.Field})
		for _, frag := range t.Fragments {
			writeValue(block.Body().AppendNewBlock("fragment", nil).Body(), frag)
		}
	}

	for _, s := range cfg.Scaffolds {
		body.AppendNewline()
		block := body.AppendNewBlock("scaffold", []string{s.Loader, s.Lang})
		sb := block.Body()
		sb.SetAttributeValue("repository", cty.StringVal(s.Repository))
		setString(sb, "ref", s.Ref)
		if len(s.Ignore) > 0 {
			vals := make([]cty.Value, len(s.Ignore))
			for i, pattern := range s.Ignore {
				vals[i] = cty.StringVal(pattern)
			}
			sb.SetAttributeValue("ignore", cty.ListVal(vals))
		}
		for _, rule := range s.Rules {
			sb.AppendNewline()
			rb := sb.AppendNewBlock("rule", nil).Body()
			rb.SetAttributeValue("find", cty.StringVal(rule.Find))
			if rule.File != nil {
				fb := rb.AppendNewBlock("file", nil).Body()
				setString(fb, "only", rule.File.Only)
				setString(fb, "matching", rule.File.Matching)
				setString(fb, "except", rule.File.Except)
			}
			writeValue(rb.AppendNewBlock("with", nil).Body(), rule.With)
		}
	}

	return f.Bytes(), nil
}

func writeValue(body *hclwrite.Body, v ValueEntry) {
	setString(body, "field", v.Field)
	setString(body, "case", v.Case)
	setString(body, "text", v.Text)
}

func setString(body *hclwrite.Body, name, value string) {
	if value == "" {
		return
	}
	body.SetAttributeValue(name, cty.StringVal(value))
}
