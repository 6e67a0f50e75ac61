// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package system

// AccountStorageOverhead - bytes charged for every account in addition
// to its data
const AccountStorageOverhead = 128

// Rent - parameters for the rent exempt minimum balance
type Rent struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" hcl:"lamports_per_byte_year,optional" json:"lamportsPerByteYear"`
	ExemptionThreshold  uint64 `gluamapper:"exemption_threshold" hcl:"exemption_threshold,optional" json:"exemptionThreshold"`
}

// DefaultRent - values used when nothing is configured
var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionThreshold:  2,
}

// MinimumBalance - lamports needed for an account of size bytes to be
// rent exempt
func (rent Rent) MinimumBalance(size int) uint64 {
	return (AccountStorageOverhead + uint64(size)) * rent.LamportsPerByteYear * rent.ExemptionThreshold
}
