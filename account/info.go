// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/spritemanager/fault"
)

// Info - an account as seen by a program during one instruction
//
// a single Info is shared by every reference to the same address in an
// instruction so that changes made by one collaborator are seen by all
type Info struct {
	Key        Address `json:"key" yaml:"key"`
	IsSigner   bool    `json:"isSigner" yaml:"isSigner"`
	IsWritable bool    `json:"isWritable" yaml:"isWritable"`
	Lamports   uint64  `json:"lamports" yaml:"lamports"`
	Data       []byte  `json:"data" yaml:"data"`
	Owner      Address `json:"owner" yaml:"owner"`
	Executable bool    `json:"executable" yaml:"executable"`

	borrowed bool
}

// Meta - an account reference inside an instruction
type Meta struct {
	Address    Address `json:"address" yaml:"address"`
	IsSigner   bool    `json:"isSigner" yaml:"isSigner"`
	IsWritable bool    `json:"isWritable" yaml:"isWritable"`
}

// NewMeta - writable reference
func NewMeta(address Address, isSigner bool) Meta {
	return Meta{Address: address, IsSigner: isSigner, IsWritable: true}
}

// NewReadonlyMeta - read only reference
func NewReadonlyMeta(address Address, isSigner bool) Meta {
	return Meta{Address: address, IsSigner: isSigner, IsWritable: false}
}

// DataIsEmpty - no data has been allocated
func (info *Info) DataIsEmpty() bool {
	return 0 == len(info.Data)
}

// TryBorrowData - exclusive access to the data region
//
// the returned function must be called to release the region
func (info *Info) TryBorrowData() ([]byte, func(), error) {
	if info.borrowed {
		return nil, nil, fault.ErrAccountBorrowFailed
	}
	info.borrowed = true
	return info.Data, func() { info.borrowed = false }, nil
}

// Clone - deep copy used to detect modification
func (info *Info) Clone() *Info {
	c := *info
	c.Data = make([]byte, len(info.Data))
	copy(c.Data, info.Data)
	c.borrowed = false
	return &c
}

// Iterator - walk the positional account list of an instruction
type Iterator struct {
	accounts []*Info
	next     int
}

// NewIterator - start at the first account
func NewIterator(accounts []*Info) *Iterator {
	return &Iterator{accounts: accounts}
}

// Next - the next account in order
func (it *Iterator) Next() (*Info, error) {
	if it.next >= len(it.accounts) {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	info := it.accounts[it.next]
	it.next += 1
	return info, nil
}
