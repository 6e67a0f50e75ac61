// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package system

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
)

// MaxAccountSize - largest data region that can be allocated
const MaxAccountSize = 10 * 1024 * 1024

// System - the native allocation service
type System struct {
	log  *logger.L
	rent Rent
}

// New - create the allocation service
func New(log *logger.L, rent Rent) *System {
	return &System{
		log:  log,
		rent: rent,
	}
}

// Rent - the rent parameters in force
func (s *System) Rent() Rent {
	return s.rent
}

// CreateOrAllocate - fund, size and assign an unused account
//
// target must either sign itself or be derived from signer; payer
// covers any shortfall of the rent exempt balance
func (s *System) CreateOrAllocate(owner account.Address, target *account.Info, payer *account.Info, size int, signer *account.Signer) error {
	if account.SystemProgramID != target.Owner || !target.DataIsEmpty() {
		s.log.Debugf("create: %s already in use", target.Key)
		return fault.ErrAlreadyInitialized
	}
	if size < 0 || size > MaxAccountSize {
		return fault.ErrNumericalOverflow
	}

	if nil != signer {
		if !signer.SignsFor(target.Key) {
			s.log.Debugf("create: seeds do not sign for: %s", target.Key)
			return fault.ErrDerivedKeyInvalid
		}
	} else if !target.IsSigner {
		return fault.ErrMissingRequiredSignature
	}

	err := s.fund(target, payer, size)
	if nil != err {
		return err
	}

	target.Data = make([]byte, size)
	target.Owner = owner

	s.log.Infof("create: %s  owner: %s  size: %d  lamports: %d", target.Key, owner, size, target.Lamports)
	return nil
}

// ResizeOrReallocate - change the data size of an account owned by
// owner, payer covers any increase in the rent exempt balance
func (s *System) ResizeOrReallocate(owner account.Address, target *account.Info, payer *account.Info, size int) error {
	if owner != target.Owner {
		return fault.ErrIncorrectOwner
	}
	if size < 0 || size > MaxAccountSize {
		return fault.ErrNumericalOverflow
	}

	err := s.fund(target, payer, size)
	if nil != err {
		return err
	}

	current := len(target.Data)
	switch {
	case size > current:
		target.Data = append(target.Data, make([]byte, size-current)...)
	case size < current:
		target.Data = target.Data[:size]
	}

	s.log.Debugf("resize: %s  from: %d  to: %d", target.Key, current, size)
	return nil
}

// Transfer - move lamports between accounts, from must sign
func (s *System) Transfer(from *account.Info, to *account.Info, lamports uint64) error {
	return Transfer(from, to, lamports)
}

// Transfer - move lamports between accounts, from must sign
func Transfer(from *account.Info, to *account.Info, lamports uint64) error {
	if !from.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	if from.Lamports < lamports {
		return fault.ErrInsufficientFunds
	}
	if to.Lamports > math.MaxUint64-lamports {
		return fault.ErrNumericalOverflow
	}
	from.Lamports -= lamports
	to.Lamports += lamports
	return nil
}

// bring target up to the rent exempt minimum for size
func (s *System) fund(target *account.Info, payer *account.Info, size int) error {
	required := s.rent.MinimumBalance(size)
	if target.Lamports >= required {
		return nil
	}
	shortfall := required - target.Lamports
	err := Transfer(payer, target, shortfall)
	if nil != err {
		s.log.Debugf("fund: %s  shortfall: %d  error: %s", target.Key, shortfall, err)
		return err
	}
	return nil
}
