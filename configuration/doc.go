// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or HCL configuration file
//
// the file type is chosen by extension.  For Lua most of base Lua is
// available such as reading files to set key data and getenv to
// extract environment supplied items.  HCL files can refer to the
// environment as env.NAME
package configuration
