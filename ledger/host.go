// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/token"
)

// Holding - the accounts created by MintToken
type Holding struct {
	Mint    account.Address `json:"mint" yaml:"mint"`
	Account account.Address `json:"account" yaml:"account"`
}

// Collectible - the accounts created by MintCollectible
type Collectible struct {
	Holding  `yaml:",inline"`
	Metadata account.Address `json:"metadata" yaml:"metadata"`
	Edition  account.Address `json:"edition" yaml:"edition"`
}

// MintToken - create a mint with owner as authority and give amount
// units to the associated account of owner
//
// owner pays for the new accounts
func (l *Ledger) MintToken(owner account.Address, mintKey account.Address, amount uint64) (*Holding, error) {
	var holding *Holding
	err := l.host(func(load loader) error {
		h, err := l.mintToken(load, owner, mintKey, amount)
		holding = h
		return err
	})
	if nil != err {
		return nil, err
	}
	return holding, nil
}

func (l *Ledger) mintToken(load loader, owner account.Address, mintKey account.Address, amount uint64) (*Holding, error) {
	payer := load(owner)
	mint := load(mintKey)

	err := l.System.CreateOrAllocate(token.ProgramID, mint, payer, token.MintSize, nil)
	if nil != err {
		return nil, err
	}
	err = l.Tokens.InitializeMint(mint, owner, 0)
	if nil != err {
		return nil, err
	}

	address, _, err := token.AssociatedAddress(owner, mintKey)
	if nil != err {
		return nil, err
	}
	holding := load(address)
	err = l.Tokens.CreateAssociatedAccount(payer, holding, payer, mint)
	if nil != err {
		return nil, err
	}

	if amount > 0 {
		err = l.Tokens.MintTo(mint, holding, payer, amount)
		if nil != err {
			return nil, err
		}
	}
	return &Holding{
		Mint:    mintKey,
		Account: address,
	}, nil
}

// MintCollectible - mint a single unit collectible with metadata and a
// master edition, held by owner
func (l *Ledger) MintCollectible(owner account.Address, mintKey account.Address, name string, symbol string, uri string) (*Collectible, error) {
	var collectible *Collectible
	err := l.host(func(load loader) error {
		h, err := l.mintToken(load, owner, mintKey, 1)
		if nil != err {
			return err
		}
		payer := load(owner)
		mint := load(mintKey)

		address, _, err := escrow.MetadataAddress(mintKey)
		if nil != err {
			return err
		}
		metadata := load(address)
		err = l.Escrows.CreateMetadata(metadata, mint, payer, payer, name, symbol, uri)
		if nil != err {
			return err
		}

		address, _, err = escrow.EditionAddress(mintKey)
		if nil != err {
			return err
		}
		edition := load(address)
		zero := uint64(0)
		err = l.Escrows.CreateMasterEdition(edition, mint, payer, metadata, payer, &zero)
		if nil != err {
			return err
		}

		collectible = &Collectible{
			Holding:  *h,
			Metadata: metadata.Key,
			Edition:  edition.Key,
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return collectible, nil
}
