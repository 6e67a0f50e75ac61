// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/spritemanager/instruction"
	"github.com/bitmark-inc/spritemanager/ledger"
	"github.com/bitmark-inc/spritemanager/record"
	"github.com/bitmark-inc/spritemanager/token"
)

func runStoreSprite(c *cli.Context) error {

	m := getMetadata(c)

	baseMint, err := checkAddress(c, "base")
	if nil != err {
		return err
	}
	spriteMint, err := checkAddress(c, "sprite")
	if nil != err {
		return err
	}

	args := &instruction.StoreSpriteArgs{
		Name:            c.String("name"),
		Description:     c.String("description"),
		PerspectiveTags: []record.PerspectiveTag{},
		StyleTags:       []record.StyleTag{},
		CustomTags:      c.StringSlice("tag"),
	}
	if "" == args.Name {
		return fmt.Errorf("name is required")
	}
	if nil == args.CustomTags {
		args.CustomTags = []string{}
	}
	for _, s := range c.StringSlice("perspective") {
		tag, err := record.PerspectiveTagFromString(s)
		if nil != err {
			return err
		}
		args.PerspectiveTags = append(args.PerspectiveTags, tag)
	}
	for _, s := range c.StringSlice("style") {
		tag, err := record.StyleTagFromString(s)
		if nil != err {
			return err
		}
		args.StyleTags = append(args.StyleTags, tag)
	}

	key, payer, err := m.signer()
	if nil != err {
		return err
	}
	addresses, err := derive(baseMint)
	if nil != err {
		return err
	}
	source, _, err := token.AssociatedAddress(payer, spriteMint)
	if nil != err {
		return err
	}
	slot, err := custodySlot(addresses.Escrow, spriteMint)
	if nil != err {
		return err
	}

	ix, err := instruction.StoreSprite(instruction.ProgramID, &instruction.StoreSpriteAccounts{
		Escrow:      addresses.Escrow,
		BaseMint:    baseMint,
		SpriteMint:  spriteMint,
		Source:      source,
		Destination: slot,
		Payer:       payer,
		Registry:    addresses.Registry,
	}, args)
	if nil != err {
		return err
	}

	err = m.execute(key, ledger.NewTransaction(ix))
	if nil != err {
		return err
	}
	return showRegistry(m, addresses.Registry)
}
