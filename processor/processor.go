// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the sprite manager state transitions
//
// a registry moves from non-existent to empty on CreateRegistry and
// grows by exactly one sprite on every StoreSprite; nothing here ever
// shrinks or deletes a registry
package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/custody"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/instruction"
)

//go:generate mockgen -source=processor.go -destination=mocks/processor.go -package=mocks

// Allocator - generic allocation and resize of account data
type Allocator interface {
	CreateOrAllocate(owner account.Address, target *account.Info, payer *account.Info, size int, signer *account.Signer) error
	ResizeOrReallocate(owner account.Address, target *account.Info, payer *account.Info, size int) error
}

// EscrowService - creates the escrow bound to a registry
type EscrowService interface {
	CreateEscrowAccount(escrow *account.Info, metadata *account.Info, mint *account.Info, tokenAccount *account.Info, edition *account.Info, payer *account.Info, authority *account.Info, sysvarInstructions *account.Info, authoritySigner *account.Signer) error
}

// Processor - executes sprite manager instructions
type Processor struct {
	log       *logger.L
	allocator Allocator
	custody   *custody.Orchestrator
	escrows   EscrowService
}

// New - create a processor over its collaborators
func New(log *logger.L, allocator Allocator, tokens custody.TokenService, escrows EscrowService) *Processor {
	return &Processor{
		log:       log,
		allocator: allocator,
		custody:   custody.New(log, tokens),
		escrows:   escrows,
	}
}

// Process - decode and run one instruction
//
// on error the accounts may be partly modified, the caller must
// discard them
func (p *Processor) Process(program account.Address, accounts []*account.Info, data []byte) error {
	op, args, err := instruction.Unpack(data)
	if nil != err {
		p.log.Warnf("invalid instruction data: %x", data)
		return err
	}

	p.log.Debugf("process: %s  accounts: %d", op, len(accounts))

	switch op {
	case instruction.CreateRegistryOp:
		err = p.createRegistry(program, accounts)
	case instruction.StoreSpriteOp:
		err = p.storeSprite(program, accounts, args)
	default:
		err = fault.ErrInvalidInstructionData
	}

	if nil != err {
		p.log.Warnf("%s failed: %s", op, err)
	}
	return err
}

// fail unless each program account is at the address it stands for
func assertPrograms(infos []*account.Info, expected ...account.Address) error {
	for i, info := range infos {
		if info.Key != expected[i] {
			return fault.ErrIncorrectProgramID
		}
	}
	return nil
}
