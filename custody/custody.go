// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - move one unit of a sprite token into escrow,
// unless the escrow already holds a slot for it
package custody

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/token"
)

//go:generate mockgen -source=custody.go -destination=mocks/custody.go -package=mocks

// TokenService - slot creation and unit transfer
type TokenService interface {
	CreateAssociatedAccount(payer *account.Info, slot *account.Info, wallet *account.Info, mint *account.Info) error
	Transfer(source *account.Info, destination *account.Info, authority *account.Info, amount uint64) error
}

// Orchestrator - decides whether custody must be taken
type Orchestrator struct {
	log    *logger.L
	tokens TokenService
}

// New - create an orchestrator over a token service
func New(log *logger.L, tokens TokenService) *Orchestrator {
	return &Orchestrator{
		log:    log,
		tokens: tokens,
	}
}

// AssertSource - the source must hold at least one unit of mint and
// must not have a delegate
func AssertSource(source *account.Info, mint account.Address) (*token.Account, error) {
	if token.ProgramID != source.Owner {
		return nil, fault.ErrInvalidAccountData
	}
	holding, err := token.UnpackAccount(source.Data)
	if nil != err {
		return nil, err
	}
	if holding.Mint != mint {
		return nil, fault.ErrTokenMintMismatch
	}
	if nil != holding.Delegate {
		return nil, fault.ErrDelegateNotAllowed
	}
	if holding.Amount < 1 {
		return nil, fault.ErrInsufficientTokens
	}
	return holding, nil
}

// SlotExists - destination is an initialised token account
func SlotExists(destination *account.Info) bool {
	return token.IsAccount(destination)
}

// EnsureCustody - create the slot of owner for mint and transfer one
// unit from source into it, payer funds the slot and authorises the
// transfer
//
// returns false without side effects if the slot already exists
func (o *Orchestrator) EnsureCustody(owner *account.Info, mint *account.Info, source *account.Info, destination *account.Info, payer *account.Info) (bool, error) {
	expected, _, err := token.AssociatedAddress(owner.Key, mint.Key)
	if nil != err {
		return false, err
	}
	if expected != destination.Key {
		o.log.Warnf("custody slot: %s  expected: %s", destination.Key, expected)
		return false, fault.ErrDerivedKeyInvalid
	}

	if SlotExists(destination) {
		o.log.Debugf("custody slot: %s already exists", destination.Key)
		return false, nil
	}

	err = o.tokens.CreateAssociatedAccount(payer, destination, owner, mint)
	if nil != err {
		o.log.Errorf("create custody slot: %s  error: %s", destination.Key, err)
		return false, err
	}

	err = o.tokens.Transfer(source, destination, payer, 1)
	if nil != err {
		o.log.Errorf("transfer to custody slot: %s  error: %s", destination.Key, err)
		return false, err
	}

	o.log.Infof("custody taken: %s  mint: %s", destination.Key, mint.Key)
	return true, nil
}
