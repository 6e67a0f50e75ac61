// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
)

// program ids
var (
	ProgramID           = account.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	AssociatedProgramID = account.MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

// Allocator - creates the data region of new token accounts
type Allocator interface {
	CreateOrAllocate(owner account.Address, target *account.Info, payer *account.Info, size int, signer *account.Signer) error
}

// Program - the token service
type Program struct {
	log       *logger.L
	allocator Allocator
}

// New - create the token service
func New(log *logger.L, allocator Allocator) *Program {
	return &Program{
		log:       log,
		allocator: allocator,
	}
}

// AssociatedSeeds - seeds of the canonical holding of mint by wallet
func AssociatedSeeds(wallet account.Address, mint account.Address) [][]byte {
	return [][]byte{wallet[:], ProgramID[:], mint[:]}
}

// AssociatedAddress - the canonical token account of a wallet for a mint
func AssociatedAddress(wallet account.Address, mint account.Address) (account.Address, uint8, error) {
	return account.FindProgramAddress(AssociatedSeeds(wallet, mint), AssociatedProgramID)
}

// InitializeMint - set up a pre-allocated mint account
func (p *Program) InitializeMint(mint *account.Info, authority account.Address, decimals uint8) error {
	if ProgramID != mint.Owner || MintSize != len(mint.Data) {
		return fault.ErrInvalidAccountData
	}
	if _, err := UnpackMint(mint.Data); nil == err {
		return fault.ErrAlreadyInitialised
	}
	m := Mint{
		MintAuthority: &authority,
		Decimals:      decimals,
		IsInitialized: true,
	}
	copy(mint.Data, m.Pack())
	p.log.Infof("initialise mint: %s  authority: %s", mint.Key, authority)
	return nil
}

// CreateAssociatedAccount - allocate and initialise the associated
// token account of wallet for mint
func (p *Program) CreateAssociatedAccount(payer *account.Info, slot *account.Info, wallet *account.Info, mint *account.Info) error {
	address, bump, err := AssociatedAddress(wallet.Key, mint.Key)
	if nil != err {
		return err
	}
	if address != slot.Key {
		p.log.Debugf("associated: %s  expected: %s", slot.Key, address)
		return fault.ErrInvalidSeeds
	}
	if ProgramID != mint.Owner {
		return fault.ErrInvalidAccountData
	}
	if _, err := UnpackMint(mint.Data); nil != err {
		return err
	}

	signer := &account.Signer{
		Program: AssociatedProgramID,
		Seeds:   account.SignerSeeds(AssociatedSeeds(wallet.Key, mint.Key), bump),
	}
	err = p.allocator.CreateOrAllocate(ProgramID, slot, payer, AccountSize, signer)
	if nil != err {
		return err
	}

	a := Account{
		Mint:  mint.Key,
		Owner: wallet.Key,
		State: Initialized,
	}
	copy(slot.Data, a.Pack())

	p.log.Infof("associated: %s  wallet: %s  mint: %s", slot.Key, wallet.Key, mint.Key)
	return nil
}

// MintTo - create new units in a token account
func (p *Program) MintTo(mint *account.Info, destination *account.Info, authority *account.Info, amount uint64) error {
	if ProgramID != mint.Owner || ProgramID != destination.Owner {
		return fault.ErrInvalidAccountData
	}
	m, err := UnpackMint(mint.Data)
	if nil != err {
		return err
	}
	dst, err := UnpackAccount(destination.Data)
	if nil != err {
		return err
	}
	if dst.Mint != mint.Key {
		return fault.ErrTokenMintMismatch
	}
	if Frozen == dst.State {
		return fault.ErrAccountFrozen
	}
	if nil == m.MintAuthority || *m.MintAuthority != authority.Key {
		return fault.ErrMintMismatch
	}
	if !authority.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	if m.Supply > math.MaxUint64-amount || dst.Amount > math.MaxUint64-amount {
		return fault.ErrNumericalOverflow
	}

	m.Supply += amount
	dst.Amount += amount
	copy(mint.Data, m.Pack())
	copy(destination.Data, dst.Pack())

	p.log.Debugf("mint to: %s  amount: %d", destination.Key, amount)
	return nil
}

// SetAuthority - replace or remove the mint authority
func (p *Program) SetAuthority(mint *account.Info, authority *account.Info, newAuthority *account.Address) error {
	if ProgramID != mint.Owner {
		return fault.ErrInvalidAccountData
	}
	m, err := UnpackMint(mint.Data)
	if nil != err {
		return err
	}
	if nil == m.MintAuthority || *m.MintAuthority != authority.Key {
		return fault.ErrMintMismatch
	}
	if !authority.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	m.MintAuthority = newAuthority
	copy(mint.Data, m.Pack())
	return nil
}

// Transfer - move units between two token accounts of the same mint
//
// authority must sign and be either the owner or the delegate of source
func (p *Program) Transfer(source *account.Info, destination *account.Info, authority *account.Info, amount uint64) error {
	if ProgramID != source.Owner || ProgramID != destination.Owner {
		return fault.ErrInvalidAccountData
	}
	src, err := UnpackAccount(source.Data)
	if nil != err {
		return err
	}
	dst, err := UnpackAccount(destination.Data)
	if nil != err {
		return err
	}
	if src.Mint != dst.Mint {
		return fault.ErrTokenMintMismatch
	}
	if Frozen == src.State || Frozen == dst.State {
		return fault.ErrAccountFrozen
	}
	if !authority.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	if src.Amount < amount {
		return fault.ErrInsufficientTokens
	}

	switch {
	case authority.Key == src.Owner:
	case nil != src.Delegate && *src.Delegate == authority.Key:
		if src.DelegatedAmount < amount {
			return fault.ErrInsufficientTokens
		}
		src.DelegatedAmount -= amount
		if 0 == src.DelegatedAmount {
			src.Delegate = nil
		}
	default:
		return fault.ErrOwnerMismatch
	}

	if source.Key == destination.Key {
		return nil
	}
	if dst.Amount > math.MaxUint64-amount {
		return fault.ErrNumericalOverflow
	}

	src.Amount -= amount
	dst.Amount += amount
	copy(source.Data, src.Pack())
	copy(destination.Data, dst.Pack())

	p.log.Debugf("transfer: %s → %s  amount: %d", source.Key, destination.Key, amount)
	return nil
}
