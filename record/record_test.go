// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/record"
)

var (
	program  = account.MustFromBase58("spritZMFNZQ5axFCT5woqtcxKLTMNupnyowh4qXWhKy")
	baseMint = account.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32}
)

func sprite(name string, mintByte byte) record.Sprite {
	var mint account.Address
	for i := range mint {
		mint[i] = mintByte
	}
	return record.Sprite{
		Name:            name,
		Description:     "a " + name,
		PerspectiveTags: []record.PerspectiveTag{record.TopDown, record.Platformer},
		StyleTags:       []record.StyleTag{record.Pixel},
		CustomTags:      []string{"walk", "idle"},
		Mint:            mint,
	}
}

func TestEmptyRegistryLayout(t *testing.T) {
	registry := record.NewRegistry(baseMint)

	packed, err := registry.Pack()
	assert.Nil(t, err, "pack error")

	expected := []byte{0x01}
	expected = append(expected, baseMint[:]...)
	expected = append(expected, 0, 0, 0, 0)
	assert.Equal(t, record.Packed(expected), packed, "layout")
	assert.Equal(t, record.RegistryKey, packed.Type(), "type")

	unpacked, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "consumed")
	assert.Equal(t, registry, unpacked, "round trip")
}

func TestSpriteLayout(t *testing.T) {
	s := record.Sprite{
		Name:            "ab",
		Description:     "",
		PerspectiveTags: []record.PerspectiveTag{record.SideScroller},
		StyleTags:       []record.StyleTag{},
		CustomTags:      []string{"x"},
		Mint:            account.Address{0xff},
	}
	packed, err := record.PackSprite(&s)
	assert.Nil(t, err, "pack error")

	expected := []byte{
		2, 0, 0, 0, 'a', 'b', // name
		0, 0, 0, 0, // description
		1, 0, 0, 0, 2, // perspective tags
		0, 0, 0, 0, // style tags
		1, 0, 0, 0, 1, 0, 0, 0, 'x', // custom tags
		0xff, // mint
	}
	expected = append(expected, make([]byte, 31)...)
	assert.Equal(t, record.Packed(expected), packed, "layout")

	unpacked, n, err := record.UnpackSprite(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(expected), n, "consumed")
	assert.Equal(t, &s, unpacked, "round trip")
}

func TestRegistryRoundTrip(t *testing.T) {
	registry := record.NewRegistry(baseMint)
	for i := 0; i < 5; i += 1 {
		registry.Append(sprite(string(rune('a'+i)), byte(i)))
	}

	packed, err := registry.Pack()
	assert.Nil(t, err, "pack error")

	// trailing bytes are ignored
	padded := append(append([]byte{}, packed...), 0, 0, 0)
	unpacked, err := record.SafeUnpack(padded)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, registry, unpacked, "round trip")
}

func TestAppendKeepsPrefix(t *testing.T) {
	registry := record.NewRegistry(baseMint)
	registry.Append(sprite("first", 7))
	before, err := registry.Pack()
	assert.Nil(t, err, "pack error")

	registry.Append(sprite("second", 8))
	after, err := registry.Pack()
	assert.Nil(t, err, "pack error")

	// only the count changes in the prefix
	assert.Equal(t, []byte(before[:33]), []byte(after[:33]), "key and base mint")
	assert.Equal(t, []byte{2, 0, 0, 0}, []byte(after[33:37]), "count")
	assert.Equal(t, []byte(before[37:]), []byte(after[37:len(before)]), "first sprite")
}

func TestPackInvalidTag(t *testing.T) {
	registry := record.NewRegistry(baseMint)
	s := sprite("bad", 1)
	s.StyleTags = []record.StyleTag{record.StyleTag(9)}
	registry.Append(s)

	_, err := registry.Pack()
	assert.Equal(t, fault.ErrFailedToSerialize, err, "invalid style tag")

	registry = record.NewRegistry(baseMint)
	registry.Key = record.Key(7)
	_, err = registry.Pack()
	assert.Equal(t, fault.ErrFailedToSerialize, err, "invalid key")
}

func TestUnpackTruncated(t *testing.T) {
	registry := record.NewRegistry(baseMint)
	registry.Append(sprite("hero", 3))
	packed, err := registry.Pack()
	assert.Nil(t, err, "pack error")

	for i := 0; i < len(packed); i += 1 {
		_, _, err := packed[:i].Unpack()
		assert.Equal(t, fault.ErrDataTypeMismatch, err, "truncated at: %d", i)
	}
}

func TestUnpackHugeCount(t *testing.T) {
	data := []byte{0x01}
	data = append(data, baseMint[:]...)
	data = append(data, 0xff, 0xff, 0xff, 0xff)

	_, err := record.SafeUnpack(data)
	assert.Equal(t, fault.ErrDataTypeMismatch, err, "huge count")
}

func TestUnpackInvalidTag(t *testing.T) {
	registry := record.NewRegistry(baseMint)
	registry.Append(sprite("hero", 3))
	packed, err := registry.Pack()
	assert.Nil(t, err, "pack error")

	// first perspective tag follows key, base mint, count, name, description and tag count
	offset := 1 + 32 + 4 + (4 + 4) + (4 + 6) + 4
	assert.Equal(t, byte(record.TopDown), packed[offset], "located tag")
	packed[offset] = 0x20

	_, err = record.SafeUnpack(packed)
	assert.Equal(t, fault.ErrDataTypeMismatch, err, "invalid tag")
}

func TestIsCorrectType(t *testing.T) {
	assert.False(t, record.IsCorrectType(nil, record.RegistryKey), "empty")
	assert.True(t, record.IsCorrectType([]byte{0}, record.RegistryKey), "uninitialized")
	assert.True(t, record.IsCorrectType([]byte{1}, record.RegistryKey), "registry")

	for b := 2; b < 256; b += 1 {
		data := []byte{byte(b)}
		assert.False(t, record.IsCorrectType(data, record.RegistryKey), "byte: %d", b)
		_, err := record.SafeUnpack(append(data, make([]byte, 40)...))
		assert.Equal(t, fault.ErrDataTypeMismatch, err, "byte: %d", b)
	}
}

func TestPadLength(t *testing.T) {
	buffer := record.Packed{1, 2, 3}

	same, err := record.PadLength(buffer, record.Size())
	assert.Nil(t, err, "variable size")
	assert.Equal(t, buffer, same, "variable size unchanged")

	padded, err := record.PadLength(record.Packed{1, 2, 3}, 6)
	assert.Nil(t, err, "pad error")
	assert.Equal(t, record.Packed{1, 2, 3, 0, 0, 0}, padded, "padded")

	_, err = record.PadLength(record.Packed{1, 2, 3}, 2)
	assert.Equal(t, fault.ErrNumericalOverflow, err, "too long")
}

func TestFromAccount(t *testing.T) {
	registry := record.NewRegistry(baseMint)
	registry.Append(sprite("hero", 3))
	packed, err := registry.Pack()
	assert.Nil(t, err, "pack error")

	info := &account.Info{
		Key:   account.Address{9},
		Data:  packed,
		Owner: program,
	}
	r, err := record.FromAccount(info, program)
	assert.Nil(t, err, "from account")
	assert.Equal(t, registry, r, "registry")

	info.Owner = account.SystemProgramID
	_, err = record.FromAccount(info, program)
	assert.Equal(t, fault.ErrIncorrectOwner, err, "owner")

	// type is checked before owner
	info.Data = []byte{5, 0, 0}
	_, err = record.FromAccount(info, program)
	assert.Equal(t, fault.ErrDataTypeMismatch, err, "type before owner")

	info.Owner = program
	info.Data = packed
	_, release, err := info.TryBorrowData()
	assert.Nil(t, err, "borrow")
	_, err = record.FromAccount(info, program)
	assert.Equal(t, fault.ErrFailedToBorrowAccountData, err, "already borrowed")
	release()
}

func TestFindAddress(t *testing.T) {
	a1, bump1, err := record.FindAddress(baseMint, program)
	assert.Nil(t, err, "derive")
	a2, bump2, err := record.FindAddress(baseMint, program)
	assert.Nil(t, err, "derive")
	assert.Equal(t, a1, a2, "deterministic")
	assert.Equal(t, bump1, bump2, "deterministic bump")

	check, err := account.CreateProgramAddress(account.SignerSeeds(record.Seeds(baseMint), bump1), program)
	assert.Nil(t, err, "create")
	assert.Equal(t, a1, check, "seeds")

	other, _, err := record.FindAddress(account.Address{}, program)
	assert.Nil(t, err, "derive")
	assert.False(t, bytes.Equal(a1[:], other[:]), "distinct")
}

func TestTagText(t *testing.T) {
	tag, err := record.PerspectiveTagFromString("side-scroller")
	assert.Nil(t, err, "parse")
	assert.Equal(t, record.SideScroller, tag, "tag")

	style, err := record.StyleTagFromString("handdrawn")
	assert.Nil(t, err, "parse")
	assert.Equal(t, record.HandDrawn, style, "style")

	_, err = record.StyleTagFromString("oil")
	assert.Equal(t, fault.ErrInvalidStyleTag, err, "unknown")
}

func TestInvalidUTF8(t *testing.T) {
	bad := sprite("hero", 3)
	bad.Name = "\xff\xfe"
	registry := record.NewRegistry(baseMint)
	registry.Append(bad)
	_, err := registry.Pack()
	assert.Equal(t, fault.ErrFailedToSerialize, err, "invalid name")

	bad = sprite("hero", 3)
	bad.CustomTags = []string{"walk", "\xc3"}
	_, err = record.PackSprite(&bad)
	assert.Equal(t, fault.ErrFailedToSerialize, err, "invalid custom tag")

	// corrupt the first byte of the stored name
	registry = record.NewRegistry(baseMint)
	registry.Append(sprite("hero", 3))
	packed, err := registry.Pack()
	assert.Nil(t, err, "pack error")
	offset := 1 + 32 + 4 + 4
	assert.Equal(t, byte('h'), packed[offset], "located name")
	packed[offset] = 0xff

	_, err = record.SafeUnpack(packed)
	assert.Equal(t, fault.ErrDataTypeMismatch, err, "invalid stored name")
}

func TestRoundTripAbsentSequences(t *testing.T) {
	registry := &record.Registry{Key: record.RegistryKey, BaseMint: baseMint}
	registry.Append(record.Sprite{Name: "bare", Mint: baseMint})

	packed, err := registry.Pack()
	assert.Nil(t, err, "pack error")
	unpacked, err := record.SafeUnpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, registry, unpacked, "round trip")

	empty := &record.Registry{Key: record.RegistryKey, BaseMint: baseMint}
	packed, err = empty.Pack()
	assert.Nil(t, err, "pack error")
	unpacked, err = record.SafeUnpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, record.NewRegistry(baseMint), unpacked, "empty registry decodes to the canonical form")
}
