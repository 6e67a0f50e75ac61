// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/spritemanager/configuration"
	"github.com/bitmark-inc/spritemanager/ledger"
	"github.com/bitmark-inc/spritemanager/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// environment variable holding the default configuration file
const configEnvironment = "SPRITEMANAGER_CONFIG"

func main() {

	// a missing .env is not an error
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "spritemanager"
	app.Usage = "attach sprites to a base collectible"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  "",
			Usage:  "*configuration `FILE` (.conf, .lua, .hcl)",
			EnvVar: configEnvironment,
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "creator",
			Usage: " signing identity `NAME`",
		},
		cli.BoolFlag{
			Name:  "yaml, y",
			Usage: " output YAML instead of JSON",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "derive",
			Usage:     "show the registry and escrow addresses of a base mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "base, b",
					Value: "",
					Usage: "*base collectible `MINT`",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "airdrop",
			Usage:     "create lamports in an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " identity name or `ADDRESS` [current identity]",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 1000000000,
					Usage: " amount to create `LAMPORTS`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "create-nft",
			Usage:     "mint a collectible held by the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*collectible name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " collectible symbol `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " metadata `URI`",
				},
			},
			Action: runCreateNFT,
		},
		{
			Name:      "create-registry",
			Usage:     "create the sprite registry of a base collectible",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "base, b",
					Value: "",
					Usage: "*base collectible `MINT`",
				},
			},
			Action: runCreateRegistry,
		},
		{
			Name:      "store-sprite",
			Usage:     "move a sprite token into custody and record it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "base, b",
					Value: "",
					Usage: "*base collectible `MINT`",
				},
				cli.StringFlag{
					Name:  "sprite, s",
					Value: "",
					Usage: "*sprite token `MINT`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*sprite name `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " sprite description `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "perspective, p",
					Usage: " perspective `TAG` [RPG|TopDown|SideScroller|Platformer]",
				},
				cli.StringSliceFlag{
					Name:  "style",
					Usage: " style `TAG` [Pixel|Vector|HandDrawn|Cartoon]",
				},
				cli.StringSliceFlag{
					Name:  "tag, t",
					Usage: " custom `TAG`",
				},
			},
			Action: runStoreSprite,
		},
		{
			Name:      "show",
			Usage:     "display the registry of a base collectible",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "base, b",
					Value: "",
					Usage: "*base collectible `MINT`",
				},
			},
			Action: runShow,
		},
		{
			Name:  "version",
			Usage: "display spritemanager version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			identity: c.GlobalString("identity"),
			yaml:     c.GlobalBool("yaml"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "version", "generate", "derive":
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fmt.Errorf("no configuration: use --config or set %s", configEnvironment)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", file)
		}

		options, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
		m.config = options

		if err = logger.Initialise(options.Logger()); nil != err {
			return err
		}
		m.log = logger.New("main")
		m.log.Infof("version: %s", version)

		if err = storage.Initialise(options.Database.Name, storage.ReadWrite); nil != err {
			m.log.Criticalf("storage initialise error: %s", err)
			return err
		}
		m.ledger = ledger.New(logger.New("ledger"), *options.Rent)
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.config {
			return nil
		}
		storage.Finalise()
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
