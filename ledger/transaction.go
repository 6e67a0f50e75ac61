// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/codec"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/instruction"
)

// Signature - a signer and its signature over the message
type Signature struct {
	Signer    account.Address   `json:"signer" yaml:"signer"`
	Signature account.Signature `json:"signature" yaml:"signature"`
}

// Transaction - instructions executed atomically
type Transaction struct {
	Instructions []*instruction.Instruction `json:"instructions" yaml:"instructions"`
	Signatures   []Signature                `json:"signatures" yaml:"signatures"`
}

// NewTransaction - unsigned transaction over some instructions
func NewTransaction(instructions ...*instruction.Instruction) *Transaction {
	return &Transaction{
		Instructions: instructions,
	}
}

// Message - the bytes that are signed
//
// count ++ [program ++ meta count ++ [address ++ signer ++ writable] ++ data]
func (tx *Transaction) Message() []byte {
	buffer := codec.AppendU32(nil, uint32(len(tx.Instructions)))
	for _, ix := range tx.Instructions {
		buffer = codec.AppendAddress(buffer, ix.ProgramID)
		buffer = codec.AppendU32(buffer, uint32(len(ix.Accounts)))
		for _, meta := range ix.Accounts {
			buffer = codec.AppendAddress(buffer, meta.Address)
			buffer = codec.AppendBool(buffer, meta.IsSigner)
			buffer = codec.AppendBool(buffer, meta.IsWritable)
		}
		buffer = codec.AppendBytes(buffer, ix.Data)
	}
	return buffer
}

// RequiredSigners - signer addresses in order of first use
func (tx *Transaction) RequiredSigners() []account.Address {
	seen := make(map[account.Address]struct{})
	signers := make([]account.Address, 0, 2)
	for _, ix := range tx.Instructions {
		for _, meta := range ix.Accounts {
			if !meta.IsSigner {
				continue
			}
			if _, ok := seen[meta.Address]; ok {
				continue
			}
			seen[meta.Address] = struct{}{}
			signers = append(signers, meta.Address)
		}
	}
	return signers
}

// Sign - add the signature of a private key
func (tx *Transaction) Sign(privateKey ed25519.PrivateKey) error {
	if ed25519.PrivateKeySize != len(privateKey) {
		return fault.ErrInvalidKeyLength
	}
	signer, err := account.FromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return err
	}
	for _, s := range tx.Signatures {
		if s.Signer == signer {
			return fault.ErrDuplicateSignature
		}
	}
	tx.Signatures = append(tx.Signatures, Signature{
		Signer:    signer,
		Signature: ed25519.Sign(privateKey, tx.Message()),
	})
	return nil
}

// Verify - check every signature and return the set of signers
func (tx *Transaction) Verify() (map[account.Address]struct{}, error) {
	if 0 == len(tx.Signatures) {
		return nil, fault.ErrMissingRequiredSignature
	}

	message := tx.Message()
	signed := make(map[account.Address]struct{})
	for _, s := range tx.Signatures {
		if _, ok := signed[s.Signer]; ok {
			return nil, fault.ErrDuplicateSignature
		}
		if ed25519.SignatureSize != len(s.Signature) {
			return nil, fault.ErrInvalidSignature
		}
		if !ed25519.Verify(ed25519.PublicKey(s.Signer[:]), message, s.Signature) {
			return nil, fault.ErrInvalidSignature
		}
		signed[s.Signer] = struct{}{}
	}

	for _, signer := range tx.RequiredSigners() {
		if _, ok := signed[signer]; !ok {
			return nil, fault.ErrMissingRequiredSignature
		}
	}
	return signed, nil
}
