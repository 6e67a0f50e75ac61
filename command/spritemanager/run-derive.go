// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/instruction"
	"github.com/bitmark-inc/spritemanager/record"
	"github.com/bitmark-inc/spritemanager/token"
)

type deriveResult struct {
	BaseMint     account.Address `json:"baseMint" yaml:"baseMint"`
	Registry     account.Address `json:"registry" yaml:"registry"`
	RegistryBump uint8           `json:"registryBump" yaml:"registryBump"`
	Escrow       account.Address `json:"escrow" yaml:"escrow"`
	EscrowBump   uint8           `json:"escrowBump" yaml:"escrowBump"`
	Metadata     account.Address `json:"metadata" yaml:"metadata"`
	Edition      account.Address `json:"edition" yaml:"edition"`
}

// the program addresses belonging to a base mint
func derive(baseMint account.Address) (*deriveResult, error) {
	registry, registryBump, err := record.FindAddress(baseMint, instruction.ProgramID)
	if nil != err {
		return nil, err
	}
	escrowKey, escrowBump, err := escrow.FindEscrowAddress(baseMint, registry)
	if nil != err {
		return nil, err
	}
	metadata, _, err := escrow.MetadataAddress(baseMint)
	if nil != err {
		return nil, err
	}
	edition, _, err := escrow.EditionAddress(baseMint)
	if nil != err {
		return nil, err
	}
	return &deriveResult{
		BaseMint:     baseMint,
		Registry:     registry,
		RegistryBump: registryBump,
		Escrow:       escrowKey,
		EscrowBump:   escrowBump,
		Metadata:     metadata,
		Edition:      edition,
	}, nil
}

// the custody slot of a sprite mint
func custodySlot(escrowKey account.Address, spriteMint account.Address) (account.Address, error) {
	slot, _, err := token.AssociatedAddress(escrowKey, spriteMint)
	return slot, err
}

func runDerive(c *cli.Context) error {

	m := getMetadata(c)

	baseMint, err := checkAddress(c, "base")
	if nil != err {
		return err
	}

	result, err := derive(baseMint)
	if nil != err {
		return err
	}
	return m.print(result)
}
