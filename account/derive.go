// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/spritemanager/fault"
)

// limits on derivation seeds
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

var derivedAddressMarker = []byte("ProgramDerivedAddress")

// CreateProgramAddress - compute the address for a complete seed list
// (including the bump)
//
// fails with fault.ErrInvalidSeeds if the result lies on the curve
func CreateProgramAddress(seeds [][]byte, program Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, fault.ErrMaxSeedLengthExceeded
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Address{}, fault.ErrMaxSeedLengthExceeded
		}
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write(derivedAddressMarker)

	var a Address
	copy(a[:], h.Sum(nil))

	if IsOnCurve(a[:]) {
		return Address{}, fault.ErrInvalidSeeds
	}
	return a, nil
}

// FindProgramAddress - search for the highest bump that yields an off
// curve address
func FindProgramAddress(seeds [][]byte, program Address) (Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return Address{}, 0, fault.ErrMaxSeedLengthExceeded
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump > 0; bump -= 1 {
		withBump[len(seeds)] = []byte{byte(bump)}
		a, err := CreateProgramAddress(withBump, program)
		switch err {
		case nil:
			return a, uint8(bump), nil
		case fault.ErrInvalidSeeds:
			// on curve, try next bump
		default:
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.ErrDerivedKeyInvalid
}

// IsOnCurve - true if the bytes decode to an ed25519 point
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// SignerSeeds - append the bump to a seed list for signing
func SignerSeeds(seeds [][]byte, bump uint8) [][]byte {
	s := make([][]byte, 0, len(seeds)+1)
	s = append(s, seeds...)
	return append(s, []byte{bump})
}

// Signer - seeds that let a program sign for an address it derived
type Signer struct {
	Program Address
	Seeds   [][]byte // complete list including the bump
}

// Address - the address these seeds sign for
func (signer *Signer) Address() (Address, error) {
	return CreateProgramAddress(signer.Seeds, signer.Program)
}

// SignsFor - true if the seeds derive the given address
func (signer *Signer) SignsFor(address Address) bool {
	if nil == signer {
		return false
	}
	a, err := signer.Address()
	return nil == err && a == address
}
