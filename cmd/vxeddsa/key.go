// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/bytemare/vxeddsa"
)

var cmdKey = &cli.Command{
	Name:  "key",
	Usage: "sub-commands for X25519 keys",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:  "generate",
			Usage: "outputs a new secret key and its public key",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "terse",
					Usage: "print just the secret key, hex encoded",
				},
			},
			Action: runKeyGenerate,
		},
		&cli.Command{
			Name:      "public",
			Usage:     "outputs the public key of a hex encoded secret key",
			ArgsUsage: `<secret-key>`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "secret-key",
					Usage:   "hex encoded secret key, if not given as an argument",
					EnvVars: []string{"VXEDDSA_SECRET_KEY"},
				},
			},
			Action: runKeyPublic,
		},
	},
}

func runKeyGenerate(cctx *cli.Context) error {
	kp, err := vxeddsa.GenerateKeyPair(nil)
	if err != nil {
		return err
	}
	slog.Debug("generated key pair", "suite", vxeddsa.Identifier(), "public_key", hex.EncodeToString(kp.PublicKey))

	out := cctx.App.Writer
	if cctx.Bool("terse") {
		fmt.Fprintln(out, hex.EncodeToString(kp.SecretKey))
		return nil
	}
	fmt.Fprintf(out, "Suite: %s\n", vxeddsa.Identifier())
	fmt.Fprintf(out, "Secret Key (hex): save this securely\n\t%s\n", hex.EncodeToString(kp.SecretKey))
	fmt.Fprintf(out, "Public Key (hex): share or publish this\n\t%s\n", hex.EncodeToString(kp.PublicKey))
	return nil
}

func runKeyPublic(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		s = cctx.String("secret-key")
	}
	if s == "" {
		return fmt.Errorf("need to provide secret key as an argument")
	}

	sk, err := decodeHexArg("secret key", s, vxeddsa.SecretKeyLength)
	if err != nil {
		return err
	}

	pk, err := vxeddsa.PublicKey(sk)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, hex.EncodeToString(pk))
	return nil
}
