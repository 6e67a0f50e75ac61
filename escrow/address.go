// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/spritemanager/account"
)

// MetadataProgramID - owner of all collectible records
var MetadataProgramID = account.MustFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

// seed constants
const (
	prefix        = "metadata"
	editionSuffix = "edition"
	escrowSuffix  = "escrow"
)

// MetadataSeeds - seeds of the metadata account of a mint
func MetadataSeeds(mint account.Address) [][]byte {
	return [][]byte{[]byte(prefix), MetadataProgramID[:], mint[:]}
}

// MetadataAddress - derive the metadata account of a mint
func MetadataAddress(mint account.Address) (account.Address, uint8, error) {
	return account.FindProgramAddress(MetadataSeeds(mint), MetadataProgramID)
}

// EditionSeeds - seeds of the master edition account of a mint
func EditionSeeds(mint account.Address) [][]byte {
	return [][]byte{[]byte(prefix), MetadataProgramID[:], mint[:], []byte(editionSuffix)}
}

// EditionAddress - derive the master edition account of a mint
func EditionAddress(mint account.Address) (account.Address, uint8, error) {
	return account.FindProgramAddress(EditionSeeds(mint), MetadataProgramID)
}

// EscrowSeeds - seeds of an escrow controlled by a creator authority
func EscrowSeeds(mint account.Address, authority account.Address) [][]byte {
	return [][]byte{
		[]byte(prefix),
		MetadataProgramID[:],
		mint[:],
		{byte(CreatorAuthority)},
		authority[:],
		[]byte(escrowSuffix),
	}
}

// FindEscrowAddress - derive the escrow of a mint for a creator authority
func FindEscrowAddress(mint account.Address, authority account.Address) (account.Address, uint8, error) {
	return account.FindProgramAddress(EscrowSeeds(mint, authority), MetadataProgramID)
}
