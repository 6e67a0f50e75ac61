// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/spritemanager/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{2039280, []byte{0xf0, 0xbb, 0x7c}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestAppendVarint64(t *testing.T) {
	prefix := []byte{0xaa, 0xbb}
	for i, item := range varint64Tests {
		result := util.AppendVarint64(append([]byte{}, prefix...), item.value)
		expected := append(append([]byte{}, prefix...), item.encoded...)
		if !bytes.Equal(result, expected) {
			t.Errorf("%d: AppendVarint64(%x) -> %x  expected: %x", i, item.value, result, expected)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), 0xff, 0x97, 0x23)
		result, count := util.FromVarint64(b)
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, b, result, count, item.value, len(item.encoded))
		}
	}

	for i, item := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	value, count := util.ClippedVarint64([]byte{0x80, 0x01}, 1, 200)
	if 128 != value || 2 != count {
		t.Errorf("clipped -> %d, %d  expected: 128, 2", value, count)
	}
	value, count = util.ClippedVarint64([]byte{0x80, 0x01}, 1, 100)
	if 0 != value || 0 != count {
		t.Errorf("out of range -> %d, %d  expected: 0, 0", value, count)
	}
}
