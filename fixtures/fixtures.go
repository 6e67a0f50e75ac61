// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/spritemanager/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed seeds so that test addresses are stable between runs
var (
	Creator = identity(0x11)
	Payer   = identity(0x22)
	Holder  = identity(0x33)
)

// Identity - a signing key and its address
type Identity struct {
	PrivateKey ed25519.PrivateKey
	Address    account.Address
}

func identity(b byte) Identity {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	var a account.Address
	copy(a[:], privateKey.Public().(ed25519.PublicKey))
	return Identity{
		PrivateKey: privateKey,
		Address:    a,
	}
}

// SetupTestLogger - critical only logging into the testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the testing directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// TestDirectory - scratch directory for databases
func TestDirectory() string {
	return dir
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
