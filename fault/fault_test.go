// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/spritemanager/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrProgramOne  = fault.ProgramError("program one")
	ErrProgramTwo  = fault.ProgramError("program two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		program  bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrProcessOne, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, true, false},
		{ErrProgramOne, false, false, false, false, true},
		{ErrProgramTwo, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrProgram(err) != e.program {
			t.Errorf("%d: expected 'program' == %v for err = %v", i, e.program, err)
		}
	}
}

func TestCodes(t *testing.T) {
	codes := []struct {
		err  error
		code uint32
	}{
		{fault.ErrDerivedKeyInvalid, 0},
		{fault.ErrAlreadyInitialized, 1},
		{fault.ErrFailedToSerialize, 2},
		{fault.ErrFailedToBorrowAccountData, 3},
		{fault.ErrIncorrectOwner, 4},
		{fault.ErrDataTypeMismatch, 5},
		{fault.ErrNumericalOverflow, 6},
	}

	for i, c := range codes {
		code, ok := fault.Code(c.err)
		if !ok || code != c.code {
			t.Errorf("%d: code for %q -> %d, %v  expected: %d", i, c.err, code, ok, c.code)
		}
		back, ok := fault.FromCode(code)
		if !ok || back != c.err {
			t.Errorf("%d: error for code %d -> %v  expected: %v", i, code, back, c.err)
		}
	}

	if _, ok := fault.Code(fault.ErrInvalidSignature); ok {
		t.Error("non program error must not have a code")
	}
	if _, ok := fault.FromCode(7); ok {
		t.Error("code 7 must not map to an error")
	}
}

func TestClassification(t *testing.T) {
	if !fault.IsRetryable(fault.ErrDerivedKeyInvalid) {
		t.Error("derived key invalid should be retryable")
	}
	if !fault.IsRetryable(fault.ErrDelegateNotAllowed) {
		t.Error("delegate assertion should be retryable")
	}
	if fault.IsRetryable(fault.ErrAlreadyInitialized) {
		t.Error("already initialized must not be retryable")
	}
	if !fault.IsDefect(fault.ErrFailedToSerialize) || !fault.IsDefect(fault.ErrNumericalOverflow) {
		t.Error("serialise and overflow are defects")
	}
	if fault.IsDefect(fault.ErrAlreadyInitialized) {
		t.Error("already initialized is not a defect")
	}
}
