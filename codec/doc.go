// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - deterministic binary packing
//
// Fields are packed sequentially in declaration order:
//
//   u8 / u32 / u64  little endian, fixed width
//   string          u32(length) ++ utf-8 bytes
//   address         32 bytes inline
//   sequence        u32(count) ++ elements
//   enumeration     one discriminant byte
//
// This is the same layout the on-chain clients use, so records written
// here can be read by them and vice versa.
package codec
