// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/custody"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/instruction"
	"github.com/bitmark-inc/spritemanager/record"
	"github.com/bitmark-inc/spritemanager/token"
)

// accounts:
//   0 escrow (w)  1 base mint  2 sprite mint  3 source (w)
//   4 destination (w)  5 payer (w, s)  6 registry (w)  7 system program
//   8 token program  9 associated token program
func (p *Processor) storeSprite(program account.Address, accounts []*account.Info, args *instruction.StoreSpriteArgs) error {
	if nil == args {
		return fault.ErrInvalidInstructionData
	}

	it := account.NewIterator(accounts)
	escrowInfo, _ := it.Next()
	baseMintInfo, _ := it.Next()
	spriteMintInfo, _ := it.Next()
	sourceInfo, _ := it.Next()
	destinationInfo, _ := it.Next()
	payerInfo, _ := it.Next()
	registryInfo, _ := it.Next()
	systemInfo, _ := it.Next()
	tokenProgramInfo, _ := it.Next()
	associatedProgramInfo, err := it.Next()
	if nil != err {
		return err
	}

	err = assertPrograms(
		[]*account.Info{systemInfo, tokenProgramInfo, associatedProgramInfo},
		account.SystemProgramID, token.ProgramID, token.AssociatedProgramID,
	)
	if nil != err {
		return err
	}

	err = account.AssertSigner(payerInfo)
	if nil != err {
		return err
	}

	escrowSeeds := escrow.EscrowSeeds(baseMintInfo.Key, registryInfo.Key)
	_, err = account.AssertDerivation(escrow.MetadataProgramID, escrowInfo, escrowSeeds, fault.ErrDerivedKeyInvalid)
	if nil != err {
		return err
	}

	_, err = custody.AssertSource(sourceInfo, spriteMintInfo.Key)
	if nil != err {
		return err
	}

	_, err = account.AssertDerivation(program, registryInfo, record.Seeds(baseMintInfo.Key), fault.ErrDerivedKeyInvalid)
	if nil != err {
		return err
	}

	_, err = p.custody.EnsureCustody(escrowInfo, spriteMintInfo, sourceInfo, destinationInfo, payerInfo)
	if nil != err {
		return err
	}

	registry, err := record.FromAccount(registryInfo, program)
	if nil != err {
		return err
	}
	registry.Append(args.Sprite(spriteMintInfo.Key))

	packed, err := registry.Pack()
	if nil != err {
		return fault.ErrFailedToSerialize
	}

	if len(packed) > len(registryInfo.Data) {
		err = p.allocator.ResizeOrReallocate(program, registryInfo, payerInfo, len(packed))
		if nil != err {
			return err
		}
	}

	err = write(registryInfo, packed)
	if nil != err {
		return err
	}

	p.log.Infof("registry: %s  sprite: %q  mint: %s  count: %d", registryInfo.Key, args.Name, spriteMintInfo.Key, len(registry.Sprites))
	return nil
}
