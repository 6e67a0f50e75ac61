// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/codec"
	"github.com/bitmark-inc/spritemanager/fault"
)

// Key - record type byte
type Key uint8

// record types, values match the metadata program
const (
	MetadataKey      Key = 4
	MasterEditionKey Key = 6
	TokenOwnedEscrow Key = 10
)

// AuthorityKind - who controls an escrow
type AuthorityKind uint8

// kinds of authority
const (
	TokenOwnerAuthority AuthorityKind = iota
	CreatorAuthority
)

// Escrow - token owned escrow record
type Escrow struct {
	BaseToken account.Address `json:"baseToken" yaml:"baseToken"`
	Authority account.Address `json:"authority" yaml:"authority"`
	Bump      uint8           `json:"bump" yaml:"bump"`
}

// EscrowSize - packed size of an escrow with a creator authority
const EscrowSize = 1 + 32 + 1 + 32 + 1

// Metadata - descriptive record of a collectible
type Metadata struct {
	UpdateAuthority account.Address `json:"updateAuthority" yaml:"updateAuthority"`
	Mint            account.Address `json:"mint" yaml:"mint"`
	Name            string          `json:"name" yaml:"name"`
	Symbol          string          `json:"symbol" yaml:"symbol"`
	URI             string          `json:"uri" yaml:"uri"`
}

// MasterEdition - marks a mint as a unique collectible
type MasterEdition struct {
	Supply    uint64  `json:"supply" yaml:"supply"`
	MaxSupply *uint64 `json:"maxSupply,omitempty" yaml:"maxSupply,omitempty"`
}

// Pack - key, base token, authority kind with creator and bump
func (e *Escrow) Pack() []byte {
	buffer := codec.AppendU8(nil, uint8(TokenOwnedEscrow))
	buffer = codec.AppendAddress(buffer, e.BaseToken)
	buffer = codec.AppendU8(buffer, uint8(CreatorAuthority))
	buffer = codec.AppendAddress(buffer, e.Authority)
	return codec.AppendU8(buffer, e.Bump)
}

// UnpackEscrow - decode an escrow record
func UnpackEscrow(data []byte) (*Escrow, error) {
	r := codec.NewReader(data)
	key, err := r.U8()
	if nil != err {
		return nil, err
	}
	if TokenOwnedEscrow != Key(key) {
		return nil, fault.ErrInvalidAccountData
	}
	e := &Escrow{}
	e.BaseToken, err = r.Address()
	if nil != err {
		return nil, err
	}
	kind, err := r.U8()
	if nil != err {
		return nil, err
	}
	if CreatorAuthority != AuthorityKind(kind) {
		return nil, fault.ErrInvalidAccountData
	}
	e.Authority, err = r.Address()
	if nil != err {
		return nil, err
	}
	e.Bump, err = r.U8()
	if nil != err {
		return nil, err
	}
	return e, nil
}

// Pack - key, authorities and the descriptive strings
func (m *Metadata) Pack() []byte {
	buffer := codec.AppendU8(nil, uint8(MetadataKey))
	buffer = codec.AppendAddress(buffer, m.UpdateAuthority)
	buffer = codec.AppendAddress(buffer, m.Mint)
	buffer = codec.AppendString(buffer, m.Name)
	buffer = codec.AppendString(buffer, m.Symbol)
	return codec.AppendString(buffer, m.URI)
}

// UnpackMetadata - decode a metadata record
func UnpackMetadata(data []byte) (*Metadata, error) {
	r := codec.NewReader(data)
	key, err := r.U8()
	if nil != err {
		return nil, err
	}
	if MetadataKey != Key(key) {
		return nil, fault.ErrInvalidAccountData
	}
	m := &Metadata{}
	if m.UpdateAuthority, err = r.Address(); nil != err {
		return nil, err
	}
	if m.Mint, err = r.Address(); nil != err {
		return nil, err
	}
	if m.Name, err = r.Text(); nil != err {
		return nil, err
	}
	if m.Symbol, err = r.Text(); nil != err {
		return nil, err
	}
	if m.URI, err = r.Text(); nil != err {
		return nil, err
	}
	return m, nil
}

// Pack - key, supply and optional maximum supply
func (e *MasterEdition) Pack() []byte {
	buffer := codec.AppendU8(nil, uint8(MasterEditionKey))
	buffer = codec.AppendU64(buffer, e.Supply)
	if nil == e.MaxSupply {
		return codec.AppendU8(buffer, 0)
	}
	buffer = codec.AppendU8(buffer, 1)
	return codec.AppendU64(buffer, *e.MaxSupply)
}

// UnpackMasterEdition - decode a master edition record
func UnpackMasterEdition(data []byte) (*MasterEdition, error) {
	r := codec.NewReader(data)
	key, err := r.U8()
	if nil != err {
		return nil, err
	}
	if MasterEditionKey != Key(key) {
		return nil, fault.ErrInvalidAccountData
	}
	e := &MasterEdition{}
	if e.Supply, err = r.U64(); nil != err {
		return nil, err
	}
	present, err := r.Bool()
	if nil != err {
		return nil, err
	}
	if present {
		maxSupply, err := r.U64()
		if nil != err {
			return nil, err
		}
		e.MaxSupply = &maxSupply
	}
	return e, nil
}
