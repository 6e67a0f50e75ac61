// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - fungible and non-fungible token custody
//
// token accounts and mints use the fixed little-endian layouts of the
// token program:
//
//   account (165 bytes):
//     mint[32] owner[32] amount u64 delegate option<[32]> state u8
//     is_native option<u64> delegated_amount u64 close_authority option<[32]>
//
//   mint (82 bytes):
//     mint_authority option<[32]> supply u64 decimals u8 is_initialized bool
//     freeze_authority option<[32]>
//
// an option is a u32 tag (0 = none, 1 = some) followed by the value,
// the value bytes are always present
package token
