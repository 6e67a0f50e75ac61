// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/spritemanager/fault"
)

// AssertSigner - the account must have signed the transaction
func AssertSigner(info *Info) error {
	if !info.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	return nil
}

// AssertOwnedBy - the account must be owned by the given program
func AssertOwnedBy(info *Info, owner Address, mismatch error) error {
	if info.Owner != owner {
		return mismatch
	}
	return nil
}

// AssertDerivation - re-derive an address and compare it with the
// caller supplied account, returning the bump on success
func AssertDerivation(program Address, info *Info, seeds [][]byte, mismatch error) (uint8, error) {
	key, bump, err := FindProgramAddress(seeds, program)
	if nil != err {
		return 0, err
	}
	if key != info.Key {
		return 0, mismatch
	}
	return bump, nil
}
