// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	pool := storage.Pool.TestData
	trx.Put(pool, []byte("key-one"), []byte("data-one"))
	trx.Put(pool, []byte("key-two"), []byte("data-two"))

	// uncommitted data is visible inside the transaction
	assert.Equal(t, []byte("data-one"), trx.Get(pool, []byte("key-one")), "uncommitted read")
	assert.True(t, trx.Has(pool, []byte("key-two")), "uncommitted has")
	_, found := pool.LastElement()
	assert.False(t, found, "iterator sees committed data only")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "nested transaction")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "released")

	assert.Equal(t, []byte("data-two"), pool.Get([]byte("key-two")), "committed read")
	last, found := pool.LastElement()
	assert.True(t, found, "last element")
	assert.Equal(t, []byte("key-two"), last.Key, "last key")
}

func TestAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(pool, []byte("keep"), []byte("yes"))
	assert.Nil(t, trx.Commit(), "commit")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(pool, []byte("discard"), []byte("no"))
	trx.Delete(pool, []byte("keep"))
	assert.False(t, trx.Has(pool, []byte("keep")), "deleted inside transaction")
	assert.Nil(t, trx.Get(pool, []byte("keep")), "deleted value")
	trx.Abort()

	assert.Nil(t, pool.Get([]byte("discard")), "aborted put")
	assert.Equal(t, []byte("yes"), pool.Get([]byte("keep")), "aborted delete")
}

func TestPoolsAreSeparate(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.Accounts, []byte{1}, []byte("account"))
	trx.Put(storage.Pool.TestData, []byte{1}, []byte("test"))
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []byte("account"), storage.Pool.Accounts.Get([]byte{1}), "accounts")
	assert.Equal(t, []byte("test"), storage.Pool.TestData.Get([]byte{1}), "test data")
	assert.False(t, storage.Pool.Signatures.Has([]byte{1}), "signatures")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	for i := byte(0); i < 5; i += 1 {
		trx.Put(pool, []byte{'k', i}, []byte{'v', i})
	}
	assert.Nil(t, trx.Commit(), "commit")

	cursor := pool.NewFetchCursor()
	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 3, len(first), "first batch")
	assert.Equal(t, []byte{'k', 0}, first[0].Key, "first key")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(rest), "second batch")
	assert.Equal(t, []byte{'v', 4}, rest[1].Value, "last value")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	n := 0
	err = pool.NewFetchCursor().Seek([]byte{'k', 2}).Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, 3, n, "mapped from seek")
}

func TestReopen(t *testing.T) {
	setup(t)
	defer removeFiles()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.TestData, []byte("persist"), []byte("me"))
	assert.Nil(t, trx.Commit(), "commit")
	storage.Finalise()

	assert.Nil(t, storage.Pool.TestData.Get([]byte("persist")), "closed")

	err = storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "read only open")
	defer storage.Finalise()
	assert.Equal(t, []byte("me"), storage.Pool.TestData.Get([]byte("persist")), "reopened")
}
