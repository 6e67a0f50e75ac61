// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/record"
)

// accounts:
//   0 escrow (w)  1 metadata (w)  2 mint  3 token account  4 edition
//   5 registry (w)  6 creator (s)  7 metadata program  8 system program
//   9 instructions sysvar
func (p *Processor) createRegistry(program account.Address, accounts []*account.Info) error {
	it := account.NewIterator(accounts)
	escrowInfo, _ := it.Next()
	metadataInfo, _ := it.Next()
	mintInfo, _ := it.Next()
	tokenAccountInfo, _ := it.Next()
	editionInfo, _ := it.Next()
	registryInfo, _ := it.Next()
	creatorInfo, _ := it.Next()
	metadataProgramInfo, _ := it.Next()
	systemInfo, _ := it.Next()
	sysvarInfo, err := it.Next()
	if nil != err {
		return err
	}

	err = assertPrograms(
		[]*account.Info{metadataProgramInfo, systemInfo, sysvarInfo},
		escrow.MetadataProgramID, account.SystemProgramID, account.SysvarInstructionsID,
	)
	if nil != err {
		return err
	}

	seeds := record.Seeds(mintInfo.Key)
	bump, err := account.AssertDerivation(program, registryInfo, seeds, fault.ErrDerivedKeyInvalid)
	if nil != err {
		return err
	}

	err = account.AssertSigner(creatorInfo)
	if nil != err {
		return err
	}

	err = account.AssertOwnedBy(escrowInfo, account.SystemProgramID, fault.ErrAlreadyInitialized)
	if nil != err {
		return err
	}
	if !escrowInfo.DataIsEmpty() {
		return fault.ErrAlreadyInitialized
	}

	registry := record.NewRegistry(mintInfo.Key)
	packed, err := registry.Pack()
	if nil != err {
		return fault.ErrFailedToSerialize
	}
	packed, err = record.PadLength(packed, record.Size())
	if nil != err {
		return err
	}

	signer := &account.Signer{
		Program: program,
		Seeds:   account.SignerSeeds(seeds, bump),
	}
	err = p.allocator.CreateOrAllocate(program, registryInfo, creatorInfo, len(packed), signer)
	if nil != err {
		return err
	}

	err = write(registryInfo, packed)
	if nil != err {
		return err
	}

	p.log.Infof("registry: %s  base mint: %s", registryInfo.Key, mintInfo.Key)

	return p.escrows.CreateEscrowAccount(
		escrowInfo,
		metadataInfo,
		mintInfo,
		tokenAccountInfo,
		editionInfo,
		creatorInfo,
		registryInfo,
		sysvarInfo,
		signer,
	)
}

// copy a serialised record over the start of an account's data
func write(info *account.Info, packed record.Packed) error {
	data, release, err := info.TryBorrowData()
	if nil != err {
		return fault.ErrFailedToBorrowAccountData
	}
	defer release()

	if len(data) < len(packed) {
		return fault.ErrNumericalOverflow
	}
	copy(data, packed)
	return nil
}
