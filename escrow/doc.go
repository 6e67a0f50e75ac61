// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - collectible metadata and token owned escrow
//
// a collectible is a mint with supply one, a metadata account and a
// master edition; an escrow attached to a collectible holds other
// tokens on its behalf and is controlled by a fixed authority
//
// all records are owned by the metadata program and start with a key
// byte identifying the record type
package escrow
