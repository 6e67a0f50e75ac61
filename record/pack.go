// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"unicode/utf8"

	"github.com/bitmark-inc/spritemanager/codec"
	"github.com/bitmark-inc/spritemanager/fault"
)

// Pack - key followed by fields in order as struct above
func (registry *Registry) Pack() (Packed, error) {
	if registry.Key >= keyLimit {
		return nil, fault.ErrFailedToSerialize
	}
	if !fitsU32(len(registry.Sprites)) {
		return nil, fault.ErrFailedToSerialize
	}

	buffer := codec.AppendU8(nil, uint8(registry.Key))
	buffer = codec.AppendAddress(buffer, registry.BaseMint)
	buffer = codec.AppendU32(buffer, uint32(len(registry.Sprites)))

	var err error
	for i := range registry.Sprites {
		buffer, err = appendSprite(buffer, &registry.Sprites[i])
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// PackSprite - packed form of a single sprite
func PackSprite(sprite *Sprite) (Packed, error) {
	return appendSprite(nil, sprite)
}

func appendSprite(buffer Packed, sprite *Sprite) (Packed, error) {
	buffer, err := AppendFields(buffer, sprite)
	if nil != err {
		return nil, fault.ErrFailedToSerialize
	}
	return codec.AppendAddress(buffer, sprite.Mint), nil
}

// AppendFields - append the descriptive fields of a sprite, everything
// except the mint
//
// errors identify the offending field so callers can map them
func AppendFields(buffer []byte, sprite *Sprite) ([]byte, error) {
	if !fitsU32(len(sprite.Name)) || !fitsU32(len(sprite.Description)) ||
		!fitsU32(len(sprite.PerspectiveTags)) || !fitsU32(len(sprite.StyleTags)) ||
		!fitsU32(len(sprite.CustomTags)) {
		return nil, fault.ErrFailedToSerialize
	}
	if !utf8.ValidString(sprite.Name) || !utf8.ValidString(sprite.Description) {
		return nil, fault.ErrInvalidUTF8
	}

	buffer = codec.AppendString(buffer, sprite.Name)
	buffer = codec.AppendString(buffer, sprite.Description)

	buffer = codec.AppendU32(buffer, uint32(len(sprite.PerspectiveTags)))
	for _, tag := range sprite.PerspectiveTags {
		if !tag.IsValid() {
			return nil, fault.ErrInvalidPerspectiveTag
		}
		buffer = codec.AppendU8(buffer, uint8(tag))
	}

	buffer = codec.AppendU32(buffer, uint32(len(sprite.StyleTags)))
	for _, tag := range sprite.StyleTags {
		if !tag.IsValid() {
			return nil, fault.ErrInvalidStyleTag
		}
		buffer = codec.AppendU8(buffer, uint8(tag))
	}

	for _, s := range sprite.CustomTags {
		if !fitsU32(len(s)) {
			return nil, fault.ErrFailedToSerialize
		}
		if !utf8.ValidString(s) {
			return nil, fault.ErrInvalidUTF8
		}
	}
	return codec.AppendStrings(buffer, sprite.CustomTags), nil
}
