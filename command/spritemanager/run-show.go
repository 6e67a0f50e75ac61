// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/instruction"
	"github.com/bitmark-inc/spritemanager/record"
)

type showResult struct {
	Address  account.Address  `json:"address" yaml:"address"`
	Lamports uint64           `json:"lamports" yaml:"lamports"`
	Size     int              `json:"size" yaml:"size"`
	Registry *record.Registry `json:"registry" yaml:"registry"`
}

func showRegistry(m *metadata, address account.Address) error {
	info, err := m.ledger.Account(address)
	if nil != err {
		return err
	}
	registry, err := record.FromAccount(info, instruction.ProgramID)
	if nil != err {
		return err
	}
	return m.print(showResult{
		Address:  address,
		Lamports: info.Lamports,
		Size:     len(info.Data),
		Registry: registry,
	})
}

func runShow(c *cli.Context) error {

	m := getMetadata(c)

	baseMint, err := checkAddress(c, "base")
	if nil != err {
		return err
	}
	registry, _, err := record.FindAddress(baseMint, instruction.ProgramID)
	if nil != err {
		return err
	}
	return showRegistry(m, registry)
}
