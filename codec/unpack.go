// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
)

// Reader - sequential field reader over a packed buffer
//
// every read checks the remaining length so truncated input returns
// fault.ErrTruncatedData instead of panicking
type Reader struct {
	buffer []byte
	n      int
}

// NewReader - start reading at the beginning of the buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{buffer: buffer}
}

// Offset - number of bytes consumed
func (r *Reader) Offset() int {
	return r.n
}

// Remaining - number of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.n
}

func (r *Reader) take(count int) ([]byte, error) {
	if count < 0 || count > r.Remaining() {
		return nil, fault.ErrTruncatedData
	}
	b := r.buffer[r.n : r.n+count]
	r.n += count
	return b, nil
}

// U8 - read one byte
func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// Bool - read a 0 or 1 byte
func (r *Reader) Bool() (bool, error) {
	b, err := r.U8()
	if nil != err {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.ErrInvalidAccountData
	}
}

// U32 - read a little endian uint32
func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 - read a little endian uint64
func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Count - read a sequence count where each element occupies at least
// minimumSize bytes, rejecting counts the buffer cannot hold
func (r *Reader) Count(minimumSize int) (int, error) {
	count, err := r.U32()
	if nil != err {
		return 0, err
	}
	if minimumSize > 0 && uint64(count)*uint64(minimumSize) > uint64(r.Remaining()) {
		return 0, fault.ErrTruncatedData
	}
	return int(count), nil
}

// Text - read a u32(length) prefixed utf-8 string
func (r *Reader) Text() (string, error) {
	length, err := r.Count(1)
	if nil != err {
		return "", err
	}
	b, err := r.take(length)
	if nil != err {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fault.ErrInvalidUTF8
	}
	return string(b), nil
}

// Bytes - read a u32(length) prefixed byte slice (copied)
func (r *Reader) Bytes() ([]byte, error) {
	length, err := r.Count(1)
	if nil != err {
		return nil, err
	}
	b, err := r.take(length)
	if nil != err {
		return nil, err
	}
	data := make([]byte, length)
	copy(data, b)
	return data, nil
}

// Texts - read a sequence of strings
//
// an empty sequence is returned as an empty, non-nil, slice
func (r *Reader) Texts() ([]string, error) {
	count, err := r.Count(4)
	if nil != err {
		return nil, err
	}
	list := make([]string, count)
	for i := range list {
		list[i], err = r.Text()
		if nil != err {
			return nil, err
		}
	}
	return list, nil
}

// Address - read 32 inline address bytes
func (r *Reader) Address() (account.Address, error) {
	var a account.Address
	b, err := r.take(account.AddressLength)
	if nil != err {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}
