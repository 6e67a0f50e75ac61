// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"github.com/bitmark-inc/spritemanager/account"
)

// AppendU8 - append a single byte
func AppendU8(buffer []byte, value uint8) []byte {
	return append(buffer, value)
}

// AppendBool - append a boolean as 0 or 1
func AppendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// AppendU32 - append a little endian uint32
func AppendU32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendU64 - append a little endian uint64
func AppendU64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - append a string prefixed by u32(length)
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendU32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

// AppendBytes - append a byte slice prefixed by u32(length)
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendU32(buffer, uint32(len(data)))
	return append(buffer, data...)
}

// AppendStrings - append a sequence of strings
func AppendStrings(buffer []byte, list []string) []byte {
	buffer = AppendU32(buffer, uint32(len(list)))
	for _, s := range list {
		buffer = AppendString(buffer, s)
	}
	return buffer
}

// AppendAddress - append the 32 address bytes without a prefix
func AppendAddress(buffer []byte, address account.Address) []byte {
	return append(buffer, address[:]...)
}
