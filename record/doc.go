// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persisted sprite registry
//
// A registry is stored in the data region of the account derived from
// ("sprite", base mint).  Byte 0 of the region is the Key:
//
//   0x00  Uninitialized   allocated but never written
//   0x01  Registry        base mint ++ sprite list
//
// Any other leading byte is rejected, the key is the only protection
// against reading a foreign account as a registry.
//
// Layout after the key (see package codec):
//
//   base mint        address
//   sprites          u32(count) ++ sprite…
//
// Sprite:
//
//   name             string
//   description      string
//   perspective tags u32(count) ++ u8…
//   style tags       u32(count) ++ u8…
//   custom tags      u32(count) ++ string…
//   mint             address
//
// Growing a registry is always unpack → append → pack, never an in-place
// patch, since every sprite has variable length.
package record
