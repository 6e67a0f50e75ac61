// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"
	"math"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
)

// Prefix - first seed of every registry address
const Prefix = "sprite"

// Key - leading type byte of every program owned account
type Key uint8

// possible account types
const (
	Uninitialized Key = iota
	RegistryKey
	keyLimit // this must be the last value
)

// String - name of the key
func (key Key) String() string {
	switch key {
	case Uninitialized:
		return "Uninitialized"
	case RegistryKey:
		return "Registry"
	default:
		return "*unknown*"
	}
}

// MarshalText - convert key to JSON text
func (key Key) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// Sprite - one derived item and the mint whose token backs it
type Sprite struct {
	Name            string           `json:"name" yaml:"name"`
	Description     string           `json:"description" yaml:"description"`
	PerspectiveTags []PerspectiveTag `json:"perspectiveTags" yaml:"perspectiveTags"`
	StyleTags       []StyleTag       `json:"styleTags" yaml:"styleTags"`
	CustomTags      []string         `json:"customTags" yaml:"customTags"`
	Mint            account.Address  `json:"mint" yaml:"mint"`
}

// Registry - the sprites attached to one base item
//
// decoded sequences are always empty slices, never nil
type Registry struct {
	Key      Key             `json:"key" yaml:"key"`
	BaseMint account.Address `json:"baseMint" yaml:"baseMint"`
	Sprites  []Sprite        `json:"sprites" yaml:"sprites"`
}

// Packed - packed records are just a byte slice
type Packed []byte

// NewRegistry - an empty registry bound to a base mint
func NewRegistry(baseMint account.Address) *Registry {
	return &Registry{
		Key:      RegistryKey,
		BaseMint: baseMint,
		Sprites:  []Sprite{},
	}
}

// Append - add a sprite at the end, existing entries are untouched
//
// absent sequences are stored as empty ones to match decoding
func (registry *Registry) Append(sprite Sprite) {
	if nil == sprite.PerspectiveTags {
		sprite.PerspectiveTags = []PerspectiveTag{}
	}
	if nil == sprite.StyleTags {
		sprite.StyleTags = []StyleTag{}
	}
	if nil == sprite.CustomTags {
		sprite.CustomTags = []string{}
	}
	registry.Sprites = append(registry.Sprites, sprite)
}

// Seeds - seeds of the registry address for a base mint (without bump)
func Seeds(baseMint account.Address) [][]byte {
	return [][]byte{[]byte(Prefix), baseMint[:]}
}

// FindAddress - derive the registry address for a base mint
func FindAddress(baseMint account.Address, program account.Address) (account.Address, uint8, error) {
	return account.FindProgramAddress(Seeds(baseMint), program)
}

// Size - fixed size of a registry record; zero means variable size
func Size() int {
	return 0
}

// Type - returns the record type code
func (record Packed) Type() Key {
	if 0 == len(record) {
		return keyLimit
	}
	return Key(record[0])
}

// IsCorrectType - true if the leading byte is the expected key or is
// Uninitialized
func IsCorrectType(data []byte, key Key) bool {
	if 0 == len(data) {
		return false
	}
	k := Key(data[0])
	if k >= keyLimit {
		return false
	}
	return k == key || k == Uninitialized
}

// PadLength - extend a buffer with zeros up to size
//
// a size of zero is a variable size record and the buffer is unchanged
func PadLength(buffer Packed, size int) (Packed, error) {
	if 0 == size {
		return buffer, nil
	}
	if len(buffer) > size {
		return nil, fault.ErrNumericalOverflow
	}
	return append(buffer, make([]byte, size-len(buffer))...), nil
}

// SafeUnpack - check the type byte then unpack
//
// trailing bytes after the record are ignored, the data region may be
// larger than the current serialisation
func SafeUnpack(data []byte) (*Registry, error) {
	if !IsCorrectType(data, RegistryKey) {
		return nil, fault.ErrDataTypeMismatch
	}
	registry, _, err := Packed(data).Unpack()
	if nil != err {
		return nil, fault.ErrDataTypeMismatch
	}
	return registry, nil
}

// FromAccount - unpack the registry held by an account and check the
// account belongs to the program
func FromAccount(info *account.Info, program account.Address) (*Registry, error) {
	data, release, err := info.TryBorrowData()
	if nil != err {
		return nil, fault.ErrFailedToBorrowAccountData
	}
	registry, err := SafeUnpack(data)
	release()
	if nil != err {
		return nil, err
	}

	err = account.AssertOwnedBy(info, program, fault.ErrIncorrectOwner)
	if nil != err {
		return nil, err
	}
	return registry, nil
}

// check all sizes fit the u32 prefixes
func fitsU32(n int) bool {
	return uint64(n) <= math.MaxUint32
}

// MarshalText - convert a packed record to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed record from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
