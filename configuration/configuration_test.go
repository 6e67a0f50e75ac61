// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/spritemanager/configuration"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/fixtures"
	"github.com/bitmark-inc/spritemanager/system"
)

const (
	testingDirName = "testing"
	creatorSeed    = "1111111111111111111111111111111111111111111111111111111111111111"
)

const luaConfig = `
local M = {}

M.data_directory = "."

M.database = {
    name = "sprites.leveldb",
}

M.rent = {
    lamports_per_byte_year = 10,
    exemption_threshold = 1,
}

M.identities = {
    {
        name = "creator",
        private_key = "` + creatorSeed + `",
    },
}

M.logging = {
    size = 4096,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

const hclConfig = `
data_directory = "."

database {
  directory = env.SPRITEMANAGER_TEST_DB
}

identity "creator" {
  private_key = "` + creatorSeed + `"
}

logging {
  count = 3
}
`

func setup(t *testing.T) {
	teardown()
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		t.Fatalf("mkdir error: %s", err)
	}
}

func teardown() {
	os.RemoveAll(testingDirName)
}

func write(t *testing.T, name string, content string) string {
	fileName := filepath.Join(testingDirName, name)
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestLuaConfiguration(t *testing.T) {
	setup(t)
	defer teardown()

	options, err := configuration.GetConfiguration(write(t, "test.conf", luaConfig))
	assert.Nil(t, err, "configuration")

	directory, _ := filepath.Abs(testingDirName)
	assert.Equal(t, directory, filepath.Clean(options.DataDirectory), "data directory")
	assert.Equal(t, filepath.Join(directory, "data", "sprites.leveldb"), options.Database.Name, "database")
	assert.Equal(t, system.Rent{LamportsPerByteYear: 10, ExemptionThreshold: 1}, *options.Rent, "rent")

	logging := options.Logger()
	assert.Equal(t, filepath.Join(directory, "log"), logging.Directory, "log directory")
	assert.Equal(t, 4096, logging.Size, "log size")
	assert.Equal(t, 10, logging.Count, "default count")
	assert.Equal(t, "info", logging.Levels["DEFAULT"], "log level")

	info, err := os.Stat(filepath.Join(directory, "data"))
	assert.Nil(t, err, "database directory created")
	assert.True(t, info.IsDir(), "is a directory")

	identity, err := options.Identity("creator")
	assert.Nil(t, err, "creator")
	address, err := identity.Address()
	assert.Nil(t, err, "address")
	assert.Equal(t, fixtures.Creator.Address, address, "address decoded")

	_, err = options.Identity("nobody")
	assert.Equal(t, fault.ErrInvalidIdentity, err, "missing identity")
}

func TestHCLConfiguration(t *testing.T) {
	setup(t)
	defer teardown()

	os.Setenv("SPRITEMANAGER_TEST_DB", "ledger")
	defer os.Unsetenv("SPRITEMANAGER_TEST_DB")

	options, err := configuration.GetConfiguration(write(t, "test.hcl", hclConfig))
	assert.Nil(t, err, "configuration")

	directory, _ := filepath.Abs(testingDirName)
	assert.Equal(t, filepath.Join(directory, "ledger", "spritemanager.leveldb"), options.Database.Name, "database")
	assert.Equal(t, system.DefaultRent, *options.Rent, "default rent")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.Equal(t, 1, len(options.Identities), "identities")

	lua, err := configuration.GetConfiguration(write(t, "same.lua", luaConfig))
	assert.Nil(t, err, "lua configuration")
	a, _ := lua.Identities[0].Address()
	b, _ := options.Identities[0].Address()
	assert.Equal(t, a, b, "same key in both formats")
}

func TestConfigurationErrors(t *testing.T) {
	setup(t)
	defer teardown()

	_, err := configuration.GetConfiguration(write(t, "test.yaml", "data_directory: ."))
	assert.Equal(t, fault.ErrUnsupportedConfigFileType, err, "unsupported extension")

	err = configuration.ParseConfigurationFile(write(t, "x.lua", "return {}"), configuration.Configuration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	_, err = configuration.GetConfiguration(write(t, "empty.lua", "return {}"))
	assert.NotNil(t, err, "missing data directory")

	bad := `return { data_directory = ".", identities = { { name = "x", private_key = "abcd" } } }`
	_, err = configuration.GetConfiguration(write(t, "bad.lua", bad))
	assert.NotNil(t, err, "short key")

	path := `return { data_directory = ".", database = { name = "a/b.leveldb" } }`
	_, err = configuration.GetConfiguration(write(t, "path.lua", path))
	assert.NotNil(t, err, "database name is a path")
}
