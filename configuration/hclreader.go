// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// decode an HCL file, environment variables are visible as env.NAME
func parseHCL(fileName string, config interface{}) error {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}
	return hclsimple.DecodeFile(fileName, ctx, config)
}

func environment() cty.Value {
	variables := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		s := strings.SplitN(e, "=", 2)
		if 2 != len(s) || "" == s[0] {
			continue
		}
		variables[s[0]] = cty.StringVal(s[1])
	}
	if 0 == len(variables) {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(variables)
}
