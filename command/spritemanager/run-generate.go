// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/spritemanager/account"
)

type generateResult struct {
	PrivateKey string          `json:"private_key" yaml:"private_key"`
	Address    account.Address `json:"address" yaml:"address"`
}

func runGenerate(c *cli.Context) error {

	m := getMetadata(c)

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return err
	}
	address, err := account.FromBytes(publicKey)
	if nil != err {
		return err
	}

	return m.print(generateResult{
		PrivateKey: hex.EncodeToString(privateKey.Seed()),
		Address:    address,
	})
}
