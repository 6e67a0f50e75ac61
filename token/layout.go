// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/codec"
	"github.com/bitmark-inc/spritemanager/fault"
)

// sizes of the packed records
const (
	AccountSize = 165
	MintSize    = 82
)

// State - token account state
type State uint8

// possible states
const (
	Uninitialized State = iota
	Initialized
	Frozen
	stateLimit // this must be the last value
)

// String - name of the state
func (state State) String() string {
	switch state {
	case Uninitialized:
		return "Uninitialized"
	case Initialized:
		return "Initialized"
	case Frozen:
		return "Frozen"
	default:
		return "*unknown*"
	}
}

// MarshalText - convert state to JSON text
func (state State) MarshalText() ([]byte, error) {
	return []byte(state.String()), nil
}

// Account - holding of a single mint
type Account struct {
	Mint            account.Address  `json:"mint" yaml:"mint"`
	Owner           account.Address  `json:"owner" yaml:"owner"`
	Amount          uint64           `json:"amount" yaml:"amount"`
	Delegate        *account.Address `json:"delegate,omitempty" yaml:"delegate,omitempty"`
	State           State            `json:"state" yaml:"state"`
	IsNative        *uint64          `json:"isNative,omitempty" yaml:"isNative,omitempty"`
	DelegatedAmount uint64           `json:"delegatedAmount" yaml:"delegatedAmount"`
	CloseAuthority  *account.Address `json:"closeAuthority,omitempty" yaml:"closeAuthority,omitempty"`
}

// Mint - definition of a token
type Mint struct {
	MintAuthority   *account.Address `json:"mintAuthority,omitempty" yaml:"mintAuthority,omitempty"`
	Supply          uint64           `json:"supply" yaml:"supply"`
	Decimals        uint8            `json:"decimals" yaml:"decimals"`
	IsInitialized   bool             `json:"isInitialized" yaml:"isInitialized"`
	FreezeAuthority *account.Address `json:"freezeAuthority,omitempty" yaml:"freezeAuthority,omitempty"`
}

// Pack - fixed size layout of a token account
func (a *Account) Pack() []byte {
	buffer := make([]byte, 0, AccountSize)
	buffer = codec.AppendAddress(buffer, a.Mint)
	buffer = codec.AppendAddress(buffer, a.Owner)
	buffer = codec.AppendU64(buffer, a.Amount)
	buffer = appendOptionAddress(buffer, a.Delegate)
	buffer = codec.AppendU8(buffer, uint8(a.State))
	if nil == a.IsNative {
		buffer = codec.AppendU32(buffer, 0)
		buffer = codec.AppendU64(buffer, 0)
	} else {
		buffer = codec.AppendU32(buffer, 1)
		buffer = codec.AppendU64(buffer, *a.IsNative)
	}
	buffer = codec.AppendU64(buffer, a.DelegatedAmount)
	buffer = appendOptionAddress(buffer, a.CloseAuthority)
	return buffer
}

// UnpackAccount - decode an initialised token account
func UnpackAccount(data []byte) (*Account, error) {
	if AccountSize != len(data) {
		return nil, fault.ErrInvalidAccountData
	}
	r := codec.NewReader(data)

	a := &Account{}
	a.Mint, _ = r.Address()
	a.Owner, _ = r.Address()
	a.Amount, _ = r.U64()

	var err error
	a.Delegate, err = readOptionAddress(r)
	if nil != err {
		return nil, err
	}

	state, _ := r.U8()
	a.State = State(state)
	if a.State >= stateLimit {
		return nil, fault.ErrInvalidAccountData
	}
	if Uninitialized == a.State {
		return nil, fault.ErrAccountNotInitialised
	}

	tag, _ := r.U32()
	native, _ := r.U64()
	switch tag {
	case 0:
	case 1:
		a.IsNative = &native
	default:
		return nil, fault.ErrInvalidAccountData
	}

	a.DelegatedAmount, _ = r.U64()
	a.CloseAuthority, err = readOptionAddress(r)
	if nil != err {
		return nil, err
	}
	return a, nil
}

// IsAccount - true if data holds an initialised token account
func IsAccount(info *account.Info) bool {
	if ProgramID != info.Owner {
		return false
	}
	_, err := UnpackAccount(info.Data)
	return nil == err
}

// Pack - fixed size layout of a mint
func (m *Mint) Pack() []byte {
	buffer := make([]byte, 0, MintSize)
	buffer = appendOptionAddress(buffer, m.MintAuthority)
	buffer = codec.AppendU64(buffer, m.Supply)
	buffer = codec.AppendU8(buffer, m.Decimals)
	buffer = codec.AppendBool(buffer, m.IsInitialized)
	buffer = appendOptionAddress(buffer, m.FreezeAuthority)
	return buffer
}

// UnpackMint - decode an initialised mint
func UnpackMint(data []byte) (*Mint, error) {
	if MintSize != len(data) {
		return nil, fault.ErrInvalidAccountData
	}
	r := codec.NewReader(data)

	m := &Mint{}
	var err error
	m.MintAuthority, err = readOptionAddress(r)
	if nil != err {
		return nil, err
	}
	m.Supply, _ = r.U64()
	m.Decimals, _ = r.U8()
	m.IsInitialized, err = r.Bool()
	if nil != err {
		return nil, err
	}
	if !m.IsInitialized {
		return nil, fault.ErrAccountNotInitialised
	}
	m.FreezeAuthority, err = readOptionAddress(r)
	if nil != err {
		return nil, err
	}
	return m, nil
}

func appendOptionAddress(buffer []byte, a *account.Address) []byte {
	if nil == a {
		buffer = codec.AppendU32(buffer, 0)
		return codec.AppendAddress(buffer, account.Address{})
	}
	buffer = codec.AppendU32(buffer, 1)
	return codec.AppendAddress(buffer, *a)
}

// length has already been checked so only the tag can be wrong
func readOptionAddress(r *codec.Reader) (*account.Address, error) {
	tag, err := r.U32()
	if nil != err {
		return nil, err
	}
	a, err := r.Address()
	if nil != err {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		return &a, nil
	default:
		return nil, fault.ErrInvalidAccountData
	}
}
