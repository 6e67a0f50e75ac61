// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/token"
)

// Authoriser - hands control of a mint to its master edition
type Authoriser interface {
	SetAuthority(mint *account.Info, authority *account.Info, newAuthority *account.Address) error
}

// Service - the collectible metadata service
type Service struct {
	log        *logger.L
	allocator  token.Allocator
	authoriser Authoriser
}

// New - create the metadata service
func New(log *logger.L, allocator token.Allocator, authoriser Authoriser) *Service {
	return &Service{
		log:        log,
		allocator:  allocator,
		authoriser: authoriser,
	}
}

// CreateMetadata - attach a metadata record to a mint
func (s *Service) CreateMetadata(metadata *account.Info, mint *account.Info, mintAuthority *account.Info, payer *account.Info, name string, symbol string, uri string) error {
	address, bump, err := MetadataAddress(mint.Key)
	if nil != err {
		return err
	}
	if address != metadata.Key {
		return fault.ErrInvalidSeeds
	}

	err = checkMintAuthority(mint, mintAuthority)
	if nil != err {
		return err
	}

	m := Metadata{
		UpdateAuthority: mintAuthority.Key,
		Mint:            mint.Key,
		Name:            name,
		Symbol:          symbol,
		URI:             uri,
	}
	packed := m.Pack()

	signer := &account.Signer{
		Program: MetadataProgramID,
		Seeds:   account.SignerSeeds(MetadataSeeds(mint.Key), bump),
	}
	err = s.allocator.CreateOrAllocate(MetadataProgramID, metadata, payer, len(packed), signer)
	if nil != err {
		return err
	}
	copy(metadata.Data, packed)

	s.log.Infof("metadata: %s  mint: %s  name: %q", metadata.Key, mint.Key, name)
	return nil
}

// CreateMasterEdition - fix the supply of a collectible and move its
// mint authority to the edition account
func (s *Service) CreateMasterEdition(edition *account.Info, mint *account.Info, mintAuthority *account.Info, metadata *account.Info, payer *account.Info, maxSupply *uint64) error {
	address, bump, err := EditionAddress(mint.Key)
	if nil != err {
		return err
	}
	if address != edition.Key {
		return fault.ErrInvalidSeeds
	}

	err = checkMetadata(metadata, mint.Key)
	if nil != err {
		return err
	}
	err = checkMintAuthority(mint, mintAuthority)
	if nil != err {
		return err
	}
	m, err := token.UnpackMint(mint.Data)
	if nil != err {
		return err
	}
	if 1 != m.Supply || 0 != m.Decimals {
		return fault.ErrInvalidAccountData
	}

	e := MasterEdition{
		MaxSupply: maxSupply,
	}
	packed := e.Pack()

	signer := &account.Signer{
		Program: MetadataProgramID,
		Seeds:   account.SignerSeeds(EditionSeeds(mint.Key), bump),
	}
	err = s.allocator.CreateOrAllocate(MetadataProgramID, edition, payer, len(packed), signer)
	if nil != err {
		return err
	}
	copy(edition.Data, packed)

	err = s.authoriser.SetAuthority(mint, mintAuthority, &edition.Key)
	if nil != err {
		return err
	}

	s.log.Infof("master edition: %s  mint: %s", edition.Key, mint.Key)
	return nil
}

// CreateEscrowAccount - create the escrow of a collectible controlled
// by authority
//
// authority must either sign or be derived from authoritySigner
func (s *Service) CreateEscrowAccount(
	escrow *account.Info,
	metadata *account.Info,
	mint *account.Info,
	tokenAccount *account.Info,
	edition *account.Info,
	payer *account.Info,
	authority *account.Info,
	sysvarInstructions *account.Info,
	authoritySigner *account.Signer,
) error {
	if account.SysvarInstructionsID != sysvarInstructions.Key {
		return fault.ErrInvalidAccountData
	}

	err := checkMetadata(metadata, mint.Key)
	if nil != err {
		return err
	}
	err = checkEdition(edition, mint.Key)
	if nil != err {
		return err
	}

	if !token.IsAccount(tokenAccount) {
		return fault.ErrInvalidAccountData
	}
	holding, err := token.UnpackAccount(tokenAccount.Data)
	if nil != err {
		return err
	}
	if holding.Mint != mint.Key {
		return fault.ErrTokenMintMismatch
	}
	if 1 != holding.Amount {
		return fault.ErrInsufficientTokens
	}

	if !authority.IsSigner && !authoritySigner.SignsFor(authority.Key) {
		return fault.ErrMissingRequiredSignature
	}

	address, bump, err := FindEscrowAddress(mint.Key, authority.Key)
	if nil != err {
		return err
	}
	if address != escrow.Key {
		s.log.Debugf("escrow: %s  expected: %s", escrow.Key, address)
		return fault.ErrInvalidSeeds
	}

	e := Escrow{
		BaseToken: mint.Key,
		Authority: authority.Key,
		Bump:      bump,
	}

	signer := &account.Signer{
		Program: MetadataProgramID,
		Seeds:   account.SignerSeeds(EscrowSeeds(mint.Key, authority.Key), bump),
	}
	err = s.allocator.CreateOrAllocate(MetadataProgramID, escrow, payer, EscrowSize, signer)
	if nil != err {
		return err
	}
	copy(escrow.Data, e.Pack())

	s.log.Infof("escrow: %s  mint: %s  authority: %s", escrow.Key, mint.Key, authority.Key)
	return nil
}

func checkMintAuthority(mint *account.Info, mintAuthority *account.Info) error {
	if token.ProgramID != mint.Owner {
		return fault.ErrInvalidAccountData
	}
	m, err := token.UnpackMint(mint.Data)
	if nil != err {
		return err
	}
	if nil == m.MintAuthority || *m.MintAuthority != mintAuthority.Key {
		return fault.ErrMintMismatch
	}
	if !mintAuthority.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	return nil
}

func checkMetadata(metadata *account.Info, mint account.Address) error {
	address, _, err := MetadataAddress(mint)
	if nil != err {
		return err
	}
	if address != metadata.Key || MetadataProgramID != metadata.Owner {
		return fault.ErrInvalidAccountData
	}
	m, err := UnpackMetadata(metadata.Data)
	if nil != err {
		return err
	}
	if m.Mint != mint {
		return fault.ErrTokenMintMismatch
	}
	return nil
}

func checkEdition(edition *account.Info, mint account.Address) error {
	address, _, err := EditionAddress(mint)
	if nil != err {
		return err
	}
	if address != edition.Key || MetadataProgramID != edition.Owner {
		return fault.ErrInvalidAccountData
	}
	_, err = UnpackMasterEdition(edition.Data)
	return err
}
