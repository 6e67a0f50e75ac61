// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk ledger store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte account address
// 4. lamports     = varint64
// 5. signature    = 64 byte ed25519 signature
// 6. *others*     = byte values of various length
//
// Accounts:
//
//   A ++ address               - account state
//                                data: lamports ++ owner address ++ executable(1 byte) ++ data
//
// Signatures:
//
//   S ++ signature             - executed transactions, first signature only
//                                data: execution time (big endian uint64 unix nanoseconds, 8 bytes)
//
// Testing:
//   Z ++ key                   - testing data
package storage
