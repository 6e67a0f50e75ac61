// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/codec"
	"github.com/bitmark-inc/spritemanager/fault"
)

func TestPackLayout(t *testing.T) {
	b := codec.AppendU8(nil, 7)
	b = codec.AppendU32(b, 0x01020304)
	b = codec.AppendU64(b, 1)
	b = codec.AppendString(b, "ab")
	b = codec.AppendBool(b, true)

	expected := []byte{
		0x07,
		0x04, 0x03, 0x02, 0x01,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 'a', 'b',
		0x01,
	}
	assert.Equal(t, expected, b, "wrong layout")
}

func TestReader(t *testing.T) {
	a := account.Address{0xaa, 0xbb}
	b := codec.AppendU8(nil, 3)
	b = codec.AppendStrings(b, []string{"one", "", "three"})
	b = codec.AppendAddress(b, a)
	b = codec.AppendBytes(b, []byte{9, 8})
	b = codec.AppendU64(b, 42)

	r := codec.NewReader(b)

	u8, err := r.U8()
	assert.Nil(t, err)
	assert.Equal(t, uint8(3), u8)

	list, err := r.Texts()
	assert.Nil(t, err)
	assert.Equal(t, []string{"one", "", "three"}, list)

	address, err := r.Address()
	assert.Nil(t, err)
	assert.Equal(t, a, address)

	data, err := r.Bytes()
	assert.Nil(t, err)
	assert.Equal(t, []byte{9, 8}, data)

	u64, err := r.U64()
	assert.Nil(t, err)
	assert.Equal(t, uint64(42), u64)

	assert.Equal(t, len(b), r.Offset(), "not all consumed")
	assert.Equal(t, 0, r.Remaining())

	_, err = r.U8()
	assert.Equal(t, fault.ErrTruncatedData, err, "read past end")
}

func TestReaderTruncated(t *testing.T) {
	full := codec.AppendString(nil, "hello")
	for i := 0; i < len(full); i += 1 {
		_, err := codec.NewReader(full[:i]).Text()
		assert.Equal(t, fault.ErrTruncatedData, err, "%d: truncated string", i)
	}

	// a huge count must not allocate
	huge := codec.AppendU32(nil, 0xffffffff)
	_, err := codec.NewReader(huge).Texts()
	assert.Equal(t, fault.ErrTruncatedData, err, "huge count")
}

func TestReaderBool(t *testing.T) {
	_, err := codec.NewReader([]byte{2}).Bool()
	assert.Equal(t, fault.ErrInvalidAccountData, err, "bool out of range")

	v, err := codec.NewReader([]byte{1}).Bool()
	assert.Nil(t, err)
	assert.True(t, v)
}

func TestReaderInvalidUTF8(t *testing.T) {
	b := codec.AppendString(nil, "\xff\xfe")
	_, err := codec.NewReader(b).Text()
	assert.Equal(t, fault.ErrInvalidUTF8, err, "invalid string")

	b = codec.AppendStrings(nil, []string{"ok", "\xc3"})
	_, err = codec.NewReader(b).Texts()
	assert.Equal(t, fault.ErrInvalidUTF8, err, "invalid string in list")

	b = codec.AppendString(nil, "héllo")
	s, err := codec.NewReader(b).Text()
	assert.Nil(t, err, "multi-byte")
	assert.Equal(t, "héllo", s)
}
