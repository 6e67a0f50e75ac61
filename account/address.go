// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/spritemanager/fault"
)

// AddressLength - byte size of an address
const AddressLength = 32

// Address - a public key or program derived address
type Address [AddressLength]byte

// well known addresses
var (
	SystemProgramID      = Address{}
	SysvarInstructionsID = MustFromBase58("Sysvar1nstructions1111111111111111111111111")
)

// FromBase58 - decode a base58 address
func FromBase58(s string) (Address, error) {
	var a Address
	b, err := base58.Decode(s)
	if nil != err {
		return a, fault.ErrCannotDecodeAddress
	}
	if AddressLength != len(b) {
		return a, fault.ErrInvalidKeyLength
	}
	copy(a[:], b)
	return a, nil
}

// MustFromBase58 - decode a constant address, panics on error
func MustFromBase58(s string) Address {
	a, err := FromBase58(s)
	if nil != err {
		panic(fmt.Sprintf("invalid address constant: %q  error: %s", s, err))
	}
	return a
}

// FromBytes - convert a byte slice to an address
func FromBytes(b []byte) (Address, error) {
	var a Address
	if AddressLength != len(b) {
		return a, fault.ErrInvalidKeyLength
	}
	copy(a[:], b)
	return a, nil
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// String - base58 form for the fmt package (for %s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - base58 form for the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert address to base58 text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
