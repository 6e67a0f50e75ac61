// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/spritemanager/codec"
	"github.com/bitmark-inc/spritemanager/fault"
)

// smallest possible packed sprite: four empty counts, two empty
// strings and the mint
const minimumSpriteSize = 4*5 + 32

// Unpack - turn a byte slice into a registry
//
// returns the registry and the number of bytes consumed, the type byte
// is not checked here, see SafeUnpack
func (record Packed) Unpack() (*Registry, int, error) {
	r := codec.NewReader(record)

	key, err := r.U8()
	if nil != err {
		return nil, 0, fault.ErrDataTypeMismatch
	}
	if Key(key) >= keyLimit {
		return nil, 0, fault.ErrDataTypeMismatch
	}

	baseMint, err := r.Address()
	if nil != err {
		return nil, 0, fault.ErrDataTypeMismatch
	}

	count, err := r.Count(minimumSpriteSize)
	if nil != err {
		return nil, 0, fault.ErrDataTypeMismatch
	}

	registry := &Registry{
		Key:      Key(key),
		BaseMint: baseMint,
		Sprites:  make([]Sprite, count),
	}
	for i := range registry.Sprites {
		err := readSprite(r, &registry.Sprites[i])
		if nil != err {
			return nil, 0, fault.ErrDataTypeMismatch
		}
	}
	return registry, r.Offset(), nil
}

// UnpackSprite - read a single packed sprite
func UnpackSprite(record Packed) (*Sprite, int, error) {
	r := codec.NewReader(record)
	sprite := &Sprite{}
	err := readSprite(r, sprite)
	if nil != err {
		return nil, 0, fault.ErrDataTypeMismatch
	}
	return sprite, r.Offset(), nil
}

func readSprite(r *codec.Reader, sprite *Sprite) error {
	err := ReadFields(r, sprite)
	if nil != err {
		return err
	}
	sprite.Mint, err = r.Address()
	return err
}

// ReadFields - read the descriptive fields of a sprite, everything
// except the mint
//
// sequences are always decoded as non-nil slices
func ReadFields(r *codec.Reader, sprite *Sprite) error {
	var err error

	sprite.Name, err = r.Text()
	if nil != err {
		return err
	}
	sprite.Description, err = r.Text()
	if nil != err {
		return err
	}

	n, err := r.Count(1)
	if nil != err {
		return err
	}
	sprite.PerspectiveTags = make([]PerspectiveTag, n)
	for i := range sprite.PerspectiveTags {
		b, err := r.U8()
		if nil != err {
			return err
		}
		tag := PerspectiveTag(b)
		if !tag.IsValid() {
			return fault.ErrInvalidPerspectiveTag
		}
		sprite.PerspectiveTags[i] = tag
	}

	n, err = r.Count(1)
	if nil != err {
		return err
	}
	sprite.StyleTags = make([]StyleTag, n)
	for i := range sprite.StyleTags {
		b, err := r.U8()
		if nil != err {
			return err
		}
		tag := StyleTag(b)
		if !tag.IsValid() {
			return fault.ErrInvalidStyleTag
		}
		sprite.StyleTags[i] = tag
	}

	sprite.CustomTags, err = r.Texts()
	return err
}
