// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/bytemare/vxeddsa"
)

var cmdSign = &cli.Command{
	Name:  "sign",
	Usage: "signs a message, and outputs the signature and the VRF output",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "secret-key",
			Usage:    "hex encoded X25519 secret key",
			Required: true,
			EnvVars:  []string{"VXEDDSA_SECRET_KEY"},
		},
		&cli.StringFlag{
			Name:  "random",
			Usage: "hex encoded 32 random bytes (default: read from the system's secure source)",
		},
		&cli.BoolFlag{
			Name:  "terse",
			Usage: "print just the signature, hex encoded",
		},
	}, messageFlags...),
	Action: runSign,
}

var cmdVerify = &cli.Command{
	Name:  "verify",
	Usage: "verifies a signature, and outputs the VRF output if it is valid",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "public-key",
			Usage:    "hex encoded X25519 public key",
			Required: true,
			EnvVars:  []string{"VXEDDSA_PUBLIC_KEY"},
		},
		&cli.StringFlag{
			Name:     "signature",
			Aliases:  []string{"s"},
			Usage:    "hex encoded signature",
			Required: true,
		},
	}, messageFlags...),
	Action: runVerify,
}

var cmdInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "parses and outputs the components of a signature",
	ArgsUsage: `<signature>`,
	Action:    runInspect,
}

func runSign(cctx *cli.Context) error {
	sk, err := decodeHexArg("secret key", cctx.String("secret-key"), vxeddsa.SecretKeyLength)
	if err != nil {
		return err
	}

	msg, err := readMessage(cctx)
	if err != nil {
		return err
	}

	var random []byte
	if cctx.IsSet("random") {
		random, err = decodeHexArg("random", cctx.String("random"), vxeddsa.RandomLength)
		if err != nil {
			return err
		}
	} else {
		random = make([]byte, vxeddsa.RandomLength)
		if _, err = rand.Read(random); err != nil {
			return fmt.Errorf("could not read random bytes: %w", err)
		}
	}

	signer, err := vxeddsa.NewSigner(sk)
	if err != nil {
		return err
	}

	sig, output, err := signer.Sign(msg, random)
	if err != nil {
		return err
	}
	slog.Debug("signed message", "public_key", hex.EncodeToString(signer.PublicKey()), "message_len", len(msg))

	out := cctx.App.Writer
	if cctx.Bool("terse") {
		fmt.Fprintln(out, hex.EncodeToString(sig))
		return nil
	}
	fmt.Fprintf(out, "Signature: %s\n", hex.EncodeToString(sig))
	fmt.Fprintf(out, "VRF Output: %s\n", hex.EncodeToString(output))
	return nil
}

func runVerify(cctx *cli.Context) error {
	pk, err := decodeHexArg("public key", cctx.String("public-key"), vxeddsa.PublicKeyLength)
	if err != nil {
		return err
	}

	sig, err := decodeHexArg("signature", cctx.String("signature"), vxeddsa.SignatureLength)
	if err != nil {
		return err
	}

	msg, err := readMessage(cctx)
	if err != nil {
		return err
	}

	verifier, err := vxeddsa.NewVerifier(pk)
	if err != nil {
		return err
	}

	output, err := verifier.Verify(msg, sig)
	if err != nil {
		slog.Info("signature verification failed", "public_key", hex.EncodeToString(pk), "err", err)
		return err
	}
	slog.Debug("verified signature", "public_key", hex.EncodeToString(pk), "message_len", len(msg))

	fmt.Fprintln(cctx.App.Writer, hex.EncodeToString(output))
	return nil
}

func runInspect(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide signature as an argument")
	}

	raw, err := decodeHexArg("signature", s, vxeddsa.SignatureLength)
	if err != nil {
		return err
	}

	sig, err := vxeddsa.DecodeSignature(raw)
	if err != nil {
		return err
	}

	out := cctx.App.Writer
	fmt.Fprintf(out, "Challenge (h): %s\n", hex.EncodeToString(sig.Challenge))
	fmt.Fprintf(out, "Response (s): %s\n", hex.EncodeToString(sig.Response))
	fmt.Fprintf(out, "VRF Point (Kv): %s\n", hex.EncodeToString(sig.VRFPoint))
	fmt.Fprintf(out, "Public Key Sign: %d\n", sig.PublicKeySign())
	return nil
}
