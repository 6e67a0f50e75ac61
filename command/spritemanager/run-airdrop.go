// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAirdrop(c *cli.Context) error {

	m := getMetadata(c)

	address, err := m.address(c.String("to"))
	if nil != err {
		return err
	}

	err = m.ledger.Airdrop(address, c.Uint64("lamports"))
	if nil != err {
		return err
	}

	info, err := m.ledger.Account(address)
	if nil != err {
		return err
	}
	return m.print(info)
}
