// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - sprite manager instruction encoding and builders
//
// instruction data is a single op byte followed by the arguments of
// that op in the same encoding as the stored records
package instruction

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/codec"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/record"
)

// ProgramID - address of the sprite manager program
var ProgramID = account.MustFromBase58("spritZMFNZQ5axFCT5woqtcxKLTMNupnyowh4qXWhKy")

// Op - instruction selector
type Op uint8

// possible ops
const (
	CreateRegistryOp Op = iota
	StoreSpriteOp
	opLimit // this must be the last value
)

// String - name of the op
func (op Op) String() string {
	switch op {
	case CreateRegistryOp:
		return "CreateRegistry"
	case StoreSpriteOp:
		return "StoreSprite"
	default:
		return "*unknown*"
	}
}

// MarshalText - convert op to JSON text
func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Instruction - a program invocation
type Instruction struct {
	ProgramID account.Address `json:"programId" yaml:"programId"`
	Accounts  []account.Meta  `json:"accounts" yaml:"accounts"`
	Data      []byte          `json:"data" yaml:"data"`
}

// StoreSpriteArgs - descriptive fields of a new sprite
type StoreSpriteArgs struct {
	Name            string                  `json:"name" yaml:"name"`
	Description     string                  `json:"description" yaml:"description"`
	PerspectiveTags []record.PerspectiveTag `json:"perspectiveTags" yaml:"perspectiveTags"`
	StyleTags       []record.StyleTag       `json:"styleTags" yaml:"styleTags"`
	CustomTags      []string                `json:"customTags" yaml:"customTags"`
}

// Sprite - the entry these arguments describe for a mint
//
// absent sequences become empty ones, the form decoding produces
func (args *StoreSpriteArgs) Sprite(mint account.Address) record.Sprite {
	sprite := record.Sprite{
		Name:            args.Name,
		Description:     args.Description,
		PerspectiveTags: args.PerspectiveTags,
		StyleTags:       args.StyleTags,
		CustomTags:      args.CustomTags,
		Mint:            mint,
	}
	if nil == sprite.PerspectiveTags {
		sprite.PerspectiveTags = []record.PerspectiveTag{}
	}
	if nil == sprite.StyleTags {
		sprite.StyleTags = []record.StyleTag{}
	}
	if nil == sprite.CustomTags {
		sprite.CustomTags = []string{}
	}
	return sprite
}

// PackCreateRegistry - data of a create registry instruction
func PackCreateRegistry() []byte {
	return []byte{byte(CreateRegistryOp)}
}

// Pack - data of a store sprite instruction
func (args *StoreSpriteArgs) Pack() ([]byte, error) {
	sprite := args.Sprite(account.Address{})
	buffer, err := record.AppendFields(codec.AppendU8(nil, uint8(StoreSpriteOp)), &sprite)
	switch err {
	case nil:
		return buffer, nil
	case fault.ErrInvalidPerspectiveTag, fault.ErrInvalidStyleTag:
		return nil, err
	default:
		return nil, fault.ErrInvalidInstructionData
	}
}

// Unpack - decode instruction data
//
// args is nil for ops that take no arguments
func Unpack(data []byte) (Op, *StoreSpriteArgs, error) {
	r := codec.NewReader(data)
	b, err := r.U8()
	if nil != err {
		return 0, nil, fault.ErrInvalidInstructionData
	}

	op := Op(b)
	var args *StoreSpriteArgs

	switch op {
	case CreateRegistryOp:
	case StoreSpriteOp:
		args, err = unpackStoreSprite(r)
		if nil != err {
			return 0, nil, fault.ErrInvalidInstructionData
		}
	default:
		return 0, nil, fault.ErrInvalidInstructionData
	}

	if 0 != r.Remaining() {
		return 0, nil, fault.ErrInvalidInstructionData
	}
	return op, args, nil
}

func unpackStoreSprite(r *codec.Reader) (*StoreSpriteArgs, error) {
	var sprite record.Sprite
	err := record.ReadFields(r, &sprite)
	if nil != err {
		return nil, err
	}
	return &StoreSpriteArgs{
		Name:            sprite.Name,
		Description:     sprite.Description,
		PerspectiveTags: sprite.PerspectiveTags,
		StyleTags:       sprite.StyleTags,
		CustomTags:      sprite.CustomTags,
	}, nil
}
