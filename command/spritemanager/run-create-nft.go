// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/spritemanager/account"
)

func runCreateNFT(c *cli.Context) error {

	m := getMetadata(c)

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("name is required")
	}

	_, owner, err := m.signer()
	if nil != err {
		return err
	}

	// the mint is a fresh random address
	var mint account.Address
	if _, err := rand.Read(mint[:]); nil != err {
		return err
	}

	collectible, err := m.ledger.MintCollectible(owner, mint, name, c.String("symbol"), c.String("uri"))
	if nil != err {
		return err
	}
	m.log.Infof("collectible: %s  owner: %s", mint, owner)
	return m.print(collectible)
}
