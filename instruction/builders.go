// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/token"
)

// CreateRegistryAccounts - addresses for a create registry instruction
type CreateRegistryAccounts struct {
	Escrow       account.Address
	Metadata     account.Address
	Mint         account.Address
	TokenAccount account.Address
	Edition      account.Address
	Registry     account.Address
	Creator      account.Address
}

// StoreSpriteAccounts - addresses for a store sprite instruction
type StoreSpriteAccounts struct {
	Escrow      account.Address
	BaseMint    account.Address
	SpriteMint  account.Address
	Source      account.Address
	Destination account.Address
	Payer       account.Address
	Registry    account.Address
}

// CreateRegistry - build a create registry instruction
//
// the creator funds the registry so it is writable as well as a signer
func CreateRegistry(program account.Address, a *CreateRegistryAccounts) *Instruction {
	return &Instruction{
		ProgramID: program,
		Accounts: []account.Meta{
			account.NewMeta(a.Escrow, false),
			account.NewMeta(a.Metadata, false),
			account.NewReadonlyMeta(a.Mint, false),
			account.NewReadonlyMeta(a.TokenAccount, false),
			account.NewReadonlyMeta(a.Edition, false),
			account.NewMeta(a.Registry, false),
			account.NewMeta(a.Creator, true),
			account.NewReadonlyMeta(escrow.MetadataProgramID, false),
			account.NewReadonlyMeta(account.SystemProgramID, false),
			account.NewReadonlyMeta(account.SysvarInstructionsID, false),
		},
		Data: PackCreateRegistry(),
	}
}

// StoreSprite - build a store sprite instruction
func StoreSprite(program account.Address, a *StoreSpriteAccounts, args *StoreSpriteArgs) (*Instruction, error) {
	data, err := args.Pack()
	if nil != err {
		return nil, err
	}
	return &Instruction{
		ProgramID: program,
		Accounts: []account.Meta{
			account.NewMeta(a.Escrow, false),
			account.NewReadonlyMeta(a.BaseMint, false),
			account.NewReadonlyMeta(a.SpriteMint, false),
			account.NewMeta(a.Source, false),
			account.NewMeta(a.Destination, false),
			account.NewMeta(a.Payer, true),
			account.NewMeta(a.Registry, false),
			account.NewReadonlyMeta(account.SystemProgramID, false),
			account.NewReadonlyMeta(token.ProgramID, false),
			account.NewReadonlyMeta(token.AssociatedProgramID, false),
		},
		Data: data,
	}, nil
}
