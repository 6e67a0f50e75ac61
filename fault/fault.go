// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ProgramError GenericError

// program errors - order is the custom error code, do not reorder
var (
	ErrDerivedKeyInvalid         = ProgramError("Derived Key Invalid")
	ErrAlreadyInitialized        = ProgramError("Already initialized")
	ErrFailedToSerialize         = ProgramError("Failed to serialize")
	ErrFailedToBorrowAccountData = ProgramError("Failed to borrow account data")
	ErrIncorrectOwner            = ProgramError("Incorrect account owner")
	ErrDataTypeMismatch          = ProgramError("Data type mismatch")
	ErrNumericalOverflow         = ProgramError("NumericalOverflowError")
)

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse       = ExistsError("account already in use")
	ErrAccountBorrowFailed       = ProcessError("account data already borrowed")
	ErrAccountFrozen             = InvalidError("token account is frozen")
	ErrAccountNotFound           = NotFoundError("account not found")
	ErrAccountNotInitialised     = InvalidError("account is not initialised")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrCannotDecodeAddress       = InvalidError("cannot decode address")
	ErrDelegateNotAllowed        = InvalidError("token account has a delegate")
	ErrDuplicateSignature        = InvalidError("duplicate signature")
	ErrIncorrectProgramID        = InvalidError("incorrect program id")
	ErrInsufficientFunds         = InvalidError("insufficient funds")
	ErrInsufficientTokens        = InvalidError("insufficient token balance")
	ErrInvalidAccountData        = InvalidError("invalid account data")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidIdentity           = InvalidError("invalid identity")
	ErrInvalidInstructionData    = InvalidError("invalid instruction data")
	ErrInvalidKeyLength          = InvalidError("key length is invalid")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPerspectiveTag     = InvalidError("invalid perspective tag")
	ErrInvalidSeeds              = InvalidError("invalid seeds for program address")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidStyleTag           = InvalidError("invalid style tag")
	ErrInvalidUTF8               = InvalidError("string is not valid utf-8")
	ErrMaxSeedLengthExceeded     = InvalidError("seed count or length exceeded")
	ErrMintMismatch              = InvalidError("mint authority mismatch")
	ErrMissingRequiredSignature  = InvalidError("missing required signature")
	ErrNotEnoughAccountKeys      = InvalidError("not enough account keys")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrOwnerMismatch             = InvalidError("token owner mismatch")
	ErrReadonlyAccountModified   = InvalidError("read-only account modified")
	ErrTokenMintMismatch         = InvalidError("token mint mismatch")
	ErrTransactionAlreadyInUse   = ProcessError("transaction already in use")
	ErrTruncatedData             = InvalidError("truncated data")
	ErrUnbalancedLamports        = InvalidError("lamports not conserved")
	ErrUnknownProgram            = NotFoundError("unknown program")
	ErrUnsupportedConfigFileType = InvalidError("unsupported configuration file type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e ProgramError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrProgram(e error) bool  { _, ok := e.(ProgramError); return ok }

// ordered list for the custom code lookup
var programErrors = []ProgramError{
	ErrDerivedKeyInvalid,
	ErrAlreadyInitialized,
	ErrFailedToSerialize,
	ErrFailedToBorrowAccountData,
	ErrIncorrectOwner,
	ErrDataTypeMismatch,
	ErrNumericalOverflow,
}

// Code - return the custom error code of a program error
func Code(e error) (uint32, bool) {
	p, ok := e.(ProgramError)
	if !ok {
		return 0, false
	}
	for i, pe := range programErrors {
		if pe == p {
			return uint32(i), true
		}
	}
	return 0, false
}

// FromCode - convert a custom error code back to its error
func FromCode(code uint32) (error, bool) {
	if int(code) >= len(programErrors) {
		return nil, false
	}
	return programErrors[code], true
}

// IsRetryable - the caller may resubmit with corrected inputs
func IsRetryable(e error) bool {
	switch e {
	case ErrDerivedKeyInvalid, ErrTokenMintMismatch, ErrInsufficientTokens, ErrDelegateNotAllowed:
		return true
	}
	return false
}

// IsDefect - an internal invariant was broken
func IsDefect(e error) bool {
	return e == ErrFailedToSerialize || e == ErrNumericalOverflow
}
