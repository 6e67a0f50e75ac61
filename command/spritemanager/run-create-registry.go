// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/spritemanager/instruction"
	"github.com/bitmark-inc/spritemanager/ledger"
	"github.com/bitmark-inc/spritemanager/token"
)

func runCreateRegistry(c *cli.Context) error {

	m := getMetadata(c)

	baseMint, err := checkAddress(c, "base")
	if nil != err {
		return err
	}
	key, creator, err := m.signer()
	if nil != err {
		return err
	}

	addresses, err := derive(baseMint)
	if nil != err {
		return err
	}
	holding, _, err := token.AssociatedAddress(creator, baseMint)
	if nil != err {
		return err
	}

	ix := instruction.CreateRegistry(instruction.ProgramID, &instruction.CreateRegistryAccounts{
		Escrow:       addresses.Escrow,
		Metadata:     addresses.Metadata,
		Mint:         baseMint,
		TokenAccount: holding,
		Edition:      addresses.Edition,
		Registry:     addresses.Registry,
		Creator:      creator,
	})

	err = m.execute(key, ledger.NewTransaction(ix))
	if nil != err {
		return err
	}
	return m.print(addresses)
}
