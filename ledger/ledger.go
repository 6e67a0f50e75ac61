// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - executes signed transactions against stored accounts
//
// execution is serialised and each transaction is all-or-nothing:
// programs work on in-memory copies of the accounts and nothing is
// written unless every instruction succeeds
package ledger

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/instruction"
	"github.com/bitmark-inc/spritemanager/processor"
	"github.com/bitmark-inc/spritemanager/storage"
	"github.com/bitmark-inc/spritemanager/system"
	"github.com/bitmark-inc/spritemanager/token"
)

// Program - an instruction handler
type Program interface {
	Process(program account.Address, accounts []*account.Info, data []byte) error
}

// Ledger - the account store and its programs
type Ledger struct {
	sync.Mutex
	log      *logger.L
	programs map[account.Address]Program

	System  *system.System
	Tokens  *token.Program
	Escrows *escrow.Service
}

// New - wire the services and register the sprite manager
//
// storage and logging must already be initialised
func New(log *logger.L, rent system.Rent) *Ledger {
	s := system.New(log, rent)
	tokens := token.New(log, s)
	escrows := escrow.New(log, s, tokens)

	l := &Ledger{
		log:      log,
		programs: make(map[account.Address]Program),
		System:   s,
		Tokens:   tokens,
		Escrows:  escrows,
	}
	l.Register(instruction.ProgramID, processor.New(logger.New("processor"), s, tokens, escrows))
	return l
}

// Register - add a program
func (l *Ledger) Register(id account.Address, program Program) {
	l.Lock()
	l.programs[id] = program
	l.Unlock()
}

// Account - the stored state of an address
func (l *Ledger) Account(address account.Address) (*account.Info, error) {
	packed := storage.Pool.Accounts.Get(address[:])
	if nil == packed {
		return nil, fault.ErrAccountNotFound
	}
	return UnpackAccount(address, packed)
}

// Put - overwrite the stored state of an account
func (l *Ledger) Put(info *account.Info) error {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Accounts, info.Key[:], PackAccount(info))
	return trx.Commit()
}

// Airdrop - create lamports in an account
func (l *Ledger) Airdrop(address account.Address, lamports uint64) error {
	return l.host(func(load loader) error {
		info := load(address)
		if info.Lamports > math.MaxUint64-lamports {
			return fault.ErrNumericalOverflow
		}
		info.Lamports += lamports
		l.log.Infof("airdrop: %s  lamports: %d", address, lamports)
		return nil
	})
}

// Execute - verify and run a transaction
func (l *Ledger) Execute(tx *Transaction) error {
	if 0 == len(tx.Instructions) {
		return fault.ErrInvalidInstructionData
	}

	signed, err := tx.Verify()
	if nil != err {
		return err
	}
	replayKey := tx.Signatures[0].Signature

	l.Lock()
	defer l.Unlock()

	if storage.Pool.Signatures.Has(replayKey) {
		return fault.ErrDuplicateSignature
	}

	s := newSession()
	for _, ix := range tx.Instructions {
		for _, meta := range ix.Accounts {
			info, err := s.load(meta.Address)
			if nil != err {
				return err
			}
			if meta.IsWritable {
				info.IsWritable = true
			}
			if _, ok := signed[meta.Address]; ok {
				info.IsSigner = true
			}
		}
	}

	for i, ix := range tx.Instructions {
		program, ok := l.programs[ix.ProgramID]
		if !ok {
			return fault.ErrUnknownProgram
		}

		infos := make([]*account.Info, len(ix.Accounts))
		for j, meta := range ix.Accounts {
			infos[j] = s.accounts[meta.Address]
		}

		err := program.Process(ix.ProgramID, infos, ix.Data)
		if nil != err {
			l.log.Warnf("instruction: %d  program: %s  error: %s", i, ix.ProgramID, err)
			return err
		}
	}

	err = s.check(true)
	if nil != err {
		return err
	}

	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, uint64(time.Now().UnixNano()))

	return s.commit(l.log, func(trx storage.Transaction) {
		trx.Put(storage.Pool.Signatures, replayKey, timestamp)
	})
}

// loader - fetch an account for a host operation
type loader func(account.Address) *account.Info

// host - run a privileged operation atomically
//
// every loaded account is writable and a signer
func (l *Ledger) host(operation func(load loader) error) error {
	l.Lock()
	defer l.Unlock()

	s := newSession()
	var loadErr error
	load := func(address account.Address) *account.Info {
		info, err := s.load(address)
		if nil != err {
			loadErr = err
			info = &account.Info{Key: address}
		}
		info.IsWritable = true
		info.IsSigner = true
		return info
	}

	err := operation(load)
	if nil == err {
		err = loadErr
	}
	if nil != err {
		return err
	}

	err = s.check(false)
	if nil != err {
		return err
	}
	return s.commit(l.log, nil)
}

// the accounts touched by one transaction
type session struct {
	accounts  map[account.Address]*account.Info
	snapshots map[account.Address]*account.Info
	order     []account.Address
}

func newSession() *session {
	return &session{
		accounts:  make(map[account.Address]*account.Info),
		snapshots: make(map[account.Address]*account.Info),
	}
}

// a missing account is an empty system owned account
func (s *session) load(address account.Address) (*account.Info, error) {
	if info, ok := s.accounts[address]; ok {
		return info, nil
	}

	info := &account.Info{Key: address}
	packed := storage.Pool.Accounts.Get(address[:])
	if nil != packed {
		var err error
		info, err = UnpackAccount(address, packed)
		if nil != err {
			return nil, err
		}
	}

	s.accounts[address] = info
	s.snapshots[address] = info.Clone()
	s.order = append(s.order, address)
	return info, nil
}

func modified(before *account.Info, after *account.Info) bool {
	return before.Lamports != after.Lamports ||
		before.Owner != after.Owner ||
		before.Executable != after.Executable ||
		!bytes.Equal(before.Data, after.Data)
}

// read-only accounts must be untouched and, unless minting is
// allowed, lamports must be conserved
func (s *session) check(conserve bool) error {
	var before, after uint64
	for _, address := range s.order {
		snapshot := s.snapshots[address]
		info := s.accounts[address]
		if !info.IsWritable && modified(snapshot, info) {
			return fault.ErrReadonlyAccountModified
		}
		before += snapshot.Lamports
		after += info.Lamports
	}
	if conserve && before != after {
		return fault.ErrUnbalancedLamports
	}
	return nil
}

// write modified accounts in one batch, empty system accounts are removed
func (s *session) commit(log *logger.L, extra func(storage.Transaction)) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	count := 0
	for _, address := range s.order {
		info := s.accounts[address]
		if !modified(s.snapshots[address], info) {
			continue
		}
		count += 1
		if 0 == info.Lamports && 0 == len(info.Data) && account.SystemProgramID == info.Owner {
			trx.Delete(storage.Pool.Accounts, address[:])
			continue
		}
		trx.Put(storage.Pool.Accounts, address[:], PackAccount(info))
	}
	if nil != extra {
		extra(trx)
	}

	err = trx.Commit()
	if nil != err {
		log.Errorf("commit error: %s", err)
		return err
	}
	log.Debugf("committed accounts: %d", count)
	return nil
}
