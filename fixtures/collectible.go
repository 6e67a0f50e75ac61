// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/system"
	"github.com/bitmark-inc/spritemanager/token"
)

// Services - real collaborators wired together
type Services struct {
	System  *system.System
	Tokens  *token.Program
	Escrows *escrow.Service
}

// Collectible - accounts of a minted collectible
type Collectible struct {
	Mint     *account.Info
	Holding  *account.Info
	Metadata *account.Info
	Edition  *account.Info
}

// NewServices - wire the services with default rent
func NewServices(log *logger.L) *Services {
	s := system.New(log, system.DefaultRent)
	tokens := token.New(log, s)
	return &Services{
		System:  s,
		Tokens:  tokens,
		Escrows: escrow.New(log, s, tokens),
	}
}

// NewHolding - mint a fungible token and give amount units to payer
func (s *Services) NewHolding(payer *account.Info, mintKey account.Address, amount uint64) (*account.Info, *account.Info, error) {
	mint := &account.Info{
		Key:        mintKey,
		IsWritable: true,
		Owner:      token.ProgramID,
		Data:       make([]byte, token.MintSize),
		Lamports:   system.DefaultRent.MinimumBalance(token.MintSize),
	}
	err := s.Tokens.InitializeMint(mint, payer.Key, 0)
	if nil != err {
		return nil, nil, err
	}

	address, _, err := token.AssociatedAddress(payer.Key, mintKey)
	if nil != err {
		return nil, nil, err
	}
	holding := &account.Info{Key: address, IsWritable: true}
	err = s.Tokens.CreateAssociatedAccount(payer, holding, payer, mint)
	if nil != err {
		return nil, nil, err
	}

	err = s.Tokens.MintTo(mint, holding, payer, amount)
	if nil != err {
		return nil, nil, err
	}
	return mint, holding, nil
}

// NewCollectible - mint a collectible held by payer
func (s *Services) NewCollectible(payer *account.Info, mintKey account.Address, name string) (*Collectible, error) {
	mint, holding, err := s.NewHolding(payer, mintKey, 1)
	if nil != err {
		return nil, err
	}

	address, _, err := escrow.MetadataAddress(mintKey)
	if nil != err {
		return nil, err
	}
	metadata := &account.Info{Key: address, IsWritable: true}
	err = s.Escrows.CreateMetadata(metadata, mint, payer, payer, name, "TEST", "")
	if nil != err {
		return nil, err
	}

	address, _, err = escrow.EditionAddress(mintKey)
	if nil != err {
		return nil, err
	}
	edition := &account.Info{Key: address, IsWritable: true}
	zero := uint64(0)
	err = s.Escrows.CreateMasterEdition(edition, mint, payer, metadata, payer, &zero)
	if nil != err {
		return nil, err
	}

	return &Collectible{
		Mint:     mint,
		Holding:  holding,
		Metadata: metadata,
		Edition:  edition,
	}, nil
}
