// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/configuration"
	"github.com/bitmark-inc/spritemanager/ledger"
)

type metadata struct {
	config   *configuration.Configuration
	ledger   *ledger.Ledger
	log      *logger.L
	identity string
	yaml     bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// print a result in the selected format
func (m *metadata) print(message interface{}) error {
	if m.yaml {
		b, err := yaml.Marshal(message)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%s", b)
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", b)
	return nil
}

// the signing key of the current identity
func (m *metadata) signer() (ed25519.PrivateKey, account.Address, error) {
	identity, err := m.config.Identity(m.identity)
	if nil != err {
		return nil, account.Address{}, fmt.Errorf("identity: %q: %s", m.identity, err)
	}
	key, err := identity.Key()
	if nil != err {
		return nil, account.Address{}, err
	}
	address, err := identity.Address()
	if nil != err {
		return nil, account.Address{}, err
	}
	return key, address, nil
}

// resolve an identity name or a base58 address
func (m *metadata) address(s string) (account.Address, error) {
	if "" == s {
		_, address, err := m.signer()
		return address, err
	}
	if identity, err := m.config.Identity(s); nil == err {
		return identity.Address()
	}
	return account.FromBase58(s)
}

// a required base58 address flag
func checkAddress(c *cli.Context, name string) (account.Address, error) {
	s := c.String(name)
	if "" == s {
		return account.Address{}, fmt.Errorf("%s is required", name)
	}
	return account.FromBase58(s)
}

// sign and run a single instruction transaction
func (m *metadata) execute(key ed25519.PrivateKey, tx *ledger.Transaction) error {
	err := tx.Sign(key)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "transaction: %d instructions  signature: %s\n", len(tx.Instructions), tx.Signatures[0].Signature)
	}
	return m.ledger.Execute(tx)
}
