// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/util"
)

// PackAccount - lamports ++ owner ++ executable ++ data
func PackAccount(info *account.Info) []byte {
	buffer := util.ToVarint64(info.Lamports)
	buffer = append(buffer, info.Owner[:]...)
	if info.Executable {
		buffer = append(buffer, 1)
	} else {
		buffer = append(buffer, 0)
	}
	return append(buffer, info.Data...)
}

// UnpackAccount - decode a stored account
func UnpackAccount(address account.Address, packed []byte) (*account.Info, error) {
	lamports, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, fault.ErrInvalidAccountData
	}
	packed = packed[n:]

	if len(packed) < account.AddressLength+1 {
		return nil, fault.ErrInvalidAccountData
	}

	info := &account.Info{
		Key:      address,
		Lamports: lamports,
	}
	copy(info.Owner[:], packed[:account.AddressLength])
	packed = packed[account.AddressLength:]

	switch packed[0] {
	case 0:
	case 1:
		info.Executable = true
	default:
		return nil, fault.ErrInvalidAccountData
	}

	info.Data = make([]byte, len(packed)-1)
	copy(info.Data, packed[1:])
	return info, nil
}
