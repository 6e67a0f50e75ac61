// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/spritemanager/account"
	custodymocks "github.com/bitmark-inc/spritemanager/custody/mocks"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/fixtures"
	"github.com/bitmark-inc/spritemanager/instruction"
	"github.com/bitmark-inc/spritemanager/processor"
	"github.com/bitmark-inc/spritemanager/processor/mocks"
	"github.com/bitmark-inc/spritemanager/record"
)

var baseMint = account.Address{0xb0, 0x01}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type createAccounts struct {
	escrow   *account.Info
	metadata *account.Info
	mint     *account.Info
	holding  *account.Info
	edition  *account.Info
	registry *account.Info
	creator  *account.Info
	sysvar   *account.Info
}

func (c *createAccounts) list() []*account.Info {
	return []*account.Info{
		c.escrow,
		c.metadata,
		c.mint,
		c.holding,
		c.edition,
		c.registry,
		c.creator,
		{Key: escrow.MetadataProgramID},
		{Key: account.SystemProgramID},
		c.sysvar,
	}
}

func newCreateAccounts(t *testing.T) *createAccounts {
	registry, _, err := record.FindAddress(baseMint, instruction.ProgramID)
	assert.Nil(t, err, "registry address")
	return &createAccounts{
		escrow:   &account.Info{Key: account.Address{0xe5}, IsWritable: true},
		metadata: &account.Info{Key: account.Address{0x3d}, IsWritable: true},
		mint:     &account.Info{Key: baseMint},
		holding:  &account.Info{Key: account.Address{0x40}},
		edition:  &account.Info{Key: account.Address{0xed}},
		registry: &account.Info{Key: registry, IsWritable: true},
		creator:  &account.Info{Key: fixtures.Creator.Address, IsSigner: true, IsWritable: true},
		sysvar:   &account.Info{Key: account.SysvarInstructionsID},
	}
}

func allocate(owner account.Address, target *account.Info, payer *account.Info, size int, signer *account.Signer) error {
	target.Data = make([]byte, size)
	target.Owner = owner
	return nil
}

func TestCreateRegistry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := newCreateAccounts(t)
	allocator := mocks.NewMockAllocator(ctl)
	escrows := mocks.NewMockEscrowService(ctl)
	tokens := custodymocks.NewMockTokenService(ctl)

	expected, err := record.NewRegistry(baseMint).Pack()
	assert.Nil(t, err, "pack")

	gomock.InOrder(
		allocator.EXPECT().
			CreateOrAllocate(instruction.ProgramID, a.registry, a.creator, len(expected), gomock.Any()).
			DoAndReturn(allocate).
			Times(1),
		escrows.EXPECT().
			CreateEscrowAccount(a.escrow, a.metadata, a.mint, a.holding, a.edition, a.creator, a.registry, a.sysvar, gomock.Any()).
			DoAndReturn(func(e, m, mint, h, ed, payer, authority, sysvar *account.Info, signer *account.Signer) error {
				assert.True(t, signer.SignsFor(authority.Key), "registry seeds sign for authority")
				assert.Equal(t, record.RegistryKey, record.Packed(authority.Data).Type(), "registry written before escrow")
				return nil
			}).
			Times(1),
	)

	p := processor.New(logger.New(fixtures.LogCategory), allocator, tokens, escrows)
	err = p.Process(instruction.ProgramID, a.list(), instruction.PackCreateRegistry())
	assert.Nil(t, err, "create registry")
	assert.Equal(t, []byte(expected), a.registry.Data, "empty registry")
	assert.Equal(t, instruction.ProgramID, a.registry.Owner, "owner")
}

func TestCreateRegistryPreconditions(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	allocator := mocks.NewMockAllocator(ctl)
	escrows := mocks.NewMockEscrowService(ctl)
	tokens := custodymocks.NewMockTokenService(ctl)
	p := processor.New(logger.New(fixtures.LogCategory), allocator, tokens, escrows)

	a := newCreateAccounts(t)
	a.registry.Key = account.Address{0x01}
	err := p.Process(instruction.ProgramID, a.list(), instruction.PackCreateRegistry())
	assert.Equal(t, fault.ErrDerivedKeyInvalid, err, "wrong registry")

	a = newCreateAccounts(t)
	a.creator.IsSigner = false
	err = p.Process(instruction.ProgramID, a.list(), instruction.PackCreateRegistry())
	assert.Equal(t, fault.ErrMissingRequiredSignature, err, "unsigned creator")

	a = newCreateAccounts(t)
	a.escrow.Owner = escrow.MetadataProgramID
	err = p.Process(instruction.ProgramID, a.list(), instruction.PackCreateRegistry())
	assert.Equal(t, fault.ErrAlreadyInitialized, err, "escrow owned")

	a = newCreateAccounts(t)
	a.escrow.Data = []byte{1}
	err = p.Process(instruction.ProgramID, a.list(), instruction.PackCreateRegistry())
	assert.Equal(t, fault.ErrAlreadyInitialized, err, "escrow not empty")

	a = newCreateAccounts(t)
	err = p.Process(instruction.ProgramID, a.list()[:9], instruction.PackCreateRegistry())
	assert.Equal(t, fault.ErrNotEnoughAccountKeys, err, "short account list")

	err = p.Process(instruction.ProgramID, a.list(), []byte{9})
	assert.Equal(t, fault.ErrInvalidInstructionData, err, "unknown op")
}

func TestCreateRegistryProgramAccounts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	allocator := mocks.NewMockAllocator(ctl)
	escrows := mocks.NewMockEscrowService(ctl)
	tokens := custodymocks.NewMockTokenService(ctl)
	p := processor.New(logger.New(fixtures.LogCategory), allocator, tokens, escrows)

	impostor := account.Address{0x66, 0x66}
	for slot := 7; slot < 10; slot += 1 {
		a := newCreateAccounts(t)
		accounts := a.list()
		accounts[slot] = &account.Info{Key: impostor}
		err := p.Process(instruction.ProgramID, accounts, instruction.PackCreateRegistry())
		assert.Equal(t, fault.ErrIncorrectProgramID, err, "slot %d", slot)
		assert.Nil(t, a.registry.Data, "slot %d: registry untouched", slot)
	}
}

func TestCreateRegistryAllocatorFails(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	allocator := mocks.NewMockAllocator(ctl)
	escrows := mocks.NewMockEscrowService(ctl)
	tokens := custodymocks.NewMockTokenService(ctl)
	p := processor.New(logger.New(fixtures.LogCategory), allocator, tokens, escrows)

	a := newCreateAccounts(t)
	allocator.EXPECT().
		CreateOrAllocate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fault.ErrAlreadyInitialized).
		Times(1)
	escrows.EXPECT().
		CreateEscrowAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	err := p.Process(instruction.ProgramID, a.list(), instruction.PackCreateRegistry())
	assert.Equal(t, fault.ErrAlreadyInitialized, err, "allocator failure")
}
