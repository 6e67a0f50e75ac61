// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/escrow"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/fixtures"
	"github.com/bitmark-inc/spritemanager/system"
	"github.com/bitmark-inc/spritemanager/token"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type collectible struct {
	service  *escrow.Service
	payer    *account.Info
	mint     *account.Info
	metadata *account.Info
	edition  *account.Info
	holding  *account.Info
	sysvar   *account.Info
}

func newCollectible(t *testing.T) *collectible {
	log := logger.New(fixtures.LogCategory)
	allocator := system.New(log, system.DefaultRent)
	tokens := token.New(log, allocator)
	service := escrow.New(log, allocator, tokens)

	payer := &account.Info{Key: fixtures.Creator.Address, IsSigner: true, IsWritable: true, Lamports: 1000000000}
	mint := &account.Info{Key: account.Address{0x61}, Owner: token.ProgramID, Data: make([]byte, token.MintSize)}
	assert.Nil(t, tokens.InitializeMint(mint, payer.Key, 0), "mint")

	a, _, err := token.AssociatedAddress(payer.Key, mint.Key)
	assert.Nil(t, err, "holding address")
	holding := &account.Info{Key: a}
	assert.Nil(t, tokens.CreateAssociatedAccount(payer, holding, payer, mint), "holding")
	assert.Nil(t, tokens.MintTo(mint, holding, payer, 1), "mint to")

	a, _, err = escrow.MetadataAddress(mint.Key)
	assert.Nil(t, err, "metadata address")
	metadata := &account.Info{Key: a}
	assert.Nil(t, service.CreateMetadata(metadata, mint, payer, payer, "Base", "BASE", "https://example.com/base.json"), "metadata")

	a, _, err = escrow.EditionAddress(mint.Key)
	assert.Nil(t, err, "edition address")
	edition := &account.Info{Key: a}
	zero := uint64(0)
	assert.Nil(t, service.CreateMasterEdition(edition, mint, payer, metadata, payer, &zero), "edition")

	return &collectible{
		service:  service,
		payer:    payer,
		mint:     mint,
		metadata: metadata,
		edition:  edition,
		holding:  holding,
		sysvar:   &account.Info{Key: account.SysvarInstructionsID},
	}
}

func TestRecords(t *testing.T) {
	e := escrow.Escrow{BaseToken: account.Address{1}, Authority: account.Address{2}, Bump: 254}
	packed := e.Pack()
	assert.Equal(t, escrow.EscrowSize, len(packed), "escrow size")
	assert.Equal(t, byte(escrow.TokenOwnedEscrow), packed[0], "escrow key")
	unpacked, err := escrow.UnpackEscrow(packed)
	assert.Nil(t, err, "unpack escrow")
	assert.Equal(t, &e, unpacked, "escrow round trip")

	m := escrow.Metadata{Name: "n", Symbol: "s", URI: "u"}
	um, err := escrow.UnpackMetadata(m.Pack())
	assert.Nil(t, err, "unpack metadata")
	assert.Equal(t, &m, um, "metadata round trip")

	_, err = escrow.UnpackMetadata(packed)
	assert.Equal(t, fault.ErrInvalidAccountData, err, "wrong key")
}

func TestCollectible(t *testing.T) {
	c := newCollectible(t)

	m, err := token.UnpackMint(c.mint.Data)
	assert.Nil(t, err, "mint")
	assert.Equal(t, uint64(1), m.Supply, "supply")
	assert.Equal(t, c.edition.Key, *m.MintAuthority, "authority moved to edition")
	assert.Equal(t, escrow.MetadataProgramID, c.metadata.Owner, "metadata owner")
}

func TestCreateEscrowAccount(t *testing.T) {
	c := newCollectible(t)

	program := account.Address{0x5a}
	seeds := [][]byte{[]byte("sprite"), c.mint.Key[:]}
	pda, bump, err := account.FindProgramAddress(seeds, program)
	assert.Nil(t, err, "derive authority")
	authority := &account.Info{Key: pda, IsWritable: true}
	signer := &account.Signer{Program: program, Seeds: account.SignerSeeds(seeds, bump)}

	a, escrowBump, err := escrow.FindEscrowAddress(c.mint.Key, pda)
	assert.Nil(t, err, "escrow address")
	escrowInfo := &account.Info{Key: a, IsWritable: true}

	err = c.service.CreateEscrowAccount(escrowInfo, c.metadata, c.mint, c.holding, c.edition, c.payer, authority, c.sysvar, nil)
	assert.Equal(t, fault.ErrMissingRequiredSignature, err, "no authority signature")

	err = c.service.CreateEscrowAccount(escrowInfo, c.metadata, c.mint, c.holding, c.edition, c.payer, authority, c.sysvar, signer)
	assert.Nil(t, err, "create escrow")
	assert.Equal(t, escrow.MetadataProgramID, escrowInfo.Owner, "escrow owner")

	e, err := escrow.UnpackEscrow(escrowInfo.Data)
	assert.Nil(t, err, "unpack escrow")
	assert.Equal(t, c.mint.Key, e.BaseToken, "base token")
	assert.Equal(t, pda, e.Authority, "authority")
	assert.Equal(t, escrowBump, e.Bump, "bump")

	err = c.service.CreateEscrowAccount(escrowInfo, c.metadata, c.mint, c.holding, c.edition, c.payer, authority, c.sysvar, signer)
	assert.Equal(t, fault.ErrAlreadyInitialized, err, "second escrow")
}

func TestCreateEscrowAccountWrongAddress(t *testing.T) {
	c := newCollectible(t)

	authority := &account.Info{Key: fixtures.Holder.Address, IsSigner: true}
	escrowInfo := &account.Info{Key: account.Address{0x01}, IsWritable: true}

	err := c.service.CreateEscrowAccount(escrowInfo, c.metadata, c.mint, c.holding, c.edition, c.payer, authority, c.sysvar, nil)
	assert.Equal(t, fault.ErrInvalidSeeds, err, "wrong escrow")

	err = c.service.CreateEscrowAccount(escrowInfo, c.metadata, c.mint, c.holding, c.edition, c.payer, authority, c.payer, nil)
	assert.Equal(t, fault.ErrInvalidAccountData, err, "wrong sysvar")
}
