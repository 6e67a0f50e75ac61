// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger account model
//
// An account is a 32 byte address holding a lamport balance, an owning
// program and a raw data region.  Addresses are either ed25519 public
// keys or program derived addresses which are guaranteed to be off the
// ed25519 curve, so no private key exists for them and only the
// deriving program can sign on their behalf.
//
// Derived address layout:
//
//   SHA-256( seed[0] ++ … ++ seed[n] ++ bump ++ program ++ "ProgramDerivedAddress" )
//
// where bump is the first value counting down from 255 which yields a
// digest that does not decode as a curve point.
package account
