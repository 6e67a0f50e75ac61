// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/spritemanager/account"
	"github.com/bitmark-inc/spritemanager/fault"
	"github.com/bitmark-inc/spritemanager/system"
	"github.com/bitmark-inc/spritemanager/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "spritemanager.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "spritemanager.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the account store
type DatabaseType struct {
	Directory string `gluamapper:"directory" hcl:"directory,optional" json:"directory"`
	Name      string `gluamapper:"name" hcl:"name,optional" json:"name"`
}

// IdentityType - a named signing key, private_key is a hex ed25519 seed
type IdentityType struct {
	Name       string `gluamapper:"name" hcl:"name,label" json:"name"`
	PrivateKey string `gluamapper:"private_key" hcl:"private_key" json:"-"`
}

// LoggerType - log file settings
type LoggerType struct {
	Directory string      `gluamapper:"directory" hcl:"directory,optional" json:"directory"`
	File      string      `gluamapper:"file" hcl:"file,optional" json:"file"`
	Size      int         `gluamapper:"size" hcl:"size,optional" json:"size"`
	Count     int         `gluamapper:"count" hcl:"count,optional" json:"count"`
	Console   bool        `gluamapper:"console" hcl:"console,optional" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" hcl:"levels,optional" json:"levels"`
}

// Configuration - the contents of a configuration file
type Configuration struct {
	DataDirectory string         `gluamapper:"data_directory" hcl:"data_directory,optional" json:"data_directory"`
	Database      *DatabaseType  `gluamapper:"database" hcl:"database,block" json:"database"`
	Rent          *system.Rent   `gluamapper:"rent" hcl:"rent,block" json:"rent"`
	Identities    []IdentityType `gluamapper:"identities" hcl:"identity,block" json:"identities"`
	Logging       *LoggerType    `gluamapper:"logging" hcl:"logging,block" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}
	options.defaults()

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// fail if any of these are not simple file names i.e. must not contain path seperator
	// then add the correct directory prefix, file item is first and corresponding directory is second
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, &options.Logging.Directory},
	}
	for _, f := range mustNotBePaths {
		*f[1] = util.EnsureAbsolute(options.DataDirectory, *f[1])
		switch filepath.Dir(*f[0]) {
		case "", ".":
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	seen := make(map[string]struct{})
	for _, identity := range options.Identities {
		if _, ok := seen[identity.Name]; ok || "" == identity.Name {
			return nil, fmt.Errorf("Identity: %q is duplicated or empty", identity.Name)
		}
		seen[identity.Name] = struct{}{}
		if _, err := identity.Key(); nil != err {
			return nil, fmt.Errorf("Identity: %q: %s", identity.Name, err)
		}
	}

	// done
	return options, nil
}

// fill in anything the file did not set
func (options *Configuration) defaults() {
	if nil == options.Database {
		options.Database = &DatabaseType{}
	}
	if "" == options.Database.Directory {
		options.Database.Directory = defaultLevelDBDirectory
	}
	if "" == options.Database.Name {
		options.Database.Name = defaultDatabase
	}

	if nil == options.Rent {
		rent := system.DefaultRent
		options.Rent = &rent
	}

	if nil == options.Logging {
		options.Logging = &LoggerType{}
	}
	if "" == options.Logging.Directory {
		options.Logging.Directory = defaultLogDirectory
	}
	if "" == options.Logging.File {
		options.Logging.File = defaultLogFile
	}
	if 0 == options.Logging.Size {
		options.Logging.Size = defaultLogSize
	}
	if 0 == options.Logging.Count {
		options.Logging.Count = defaultLogCount
	}
	if 0 == len(options.Logging.Levels) {
		options.Logging.Levels = defaultLogLevels
	}
}

// Logger - settings for logger.Initialise
func (options *Configuration) Logger() logger.Configuration {
	return logger.Configuration{
		Directory: options.Logging.Directory,
		File:      options.Logging.File,
		Size:      options.Logging.Size,
		Count:     options.Logging.Count,
		Console:   options.Logging.Console,
		Levels:    options.Logging.Levels,
	}
}

// Identity - find a configured identity by name
func (options *Configuration) Identity(name string) (*IdentityType, error) {
	for i := range options.Identities {
		if name == options.Identities[i].Name {
			return &options.Identities[i], nil
		}
	}
	return nil, fault.ErrInvalidIdentity
}

// Key - decode the private key of an identity
func (identity *IdentityType) Key() (ed25519.PrivateKey, error) {
	seed, err := hex.DecodeString(identity.PrivateKey)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != len(seed) {
		return nil, errors.New("private key must be a 32 byte seed")
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// Address - the public address of an identity
func (identity *IdentityType) Address() (account.Address, error) {
	key, err := identity.Key()
	if nil != err {
		return account.Address{}, err
	}
	return account.FromBytes(key.Public().(ed25519.PublicKey))
}
