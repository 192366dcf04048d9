// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package vxeddsa

import (
	"fmt"

	"github.com/bytemare/vxeddsa/internal"
)

// Signer holds the prover data: a secret key converted once to its Edwards form. It is safe for concurrent use.
type Signer struct {
	keyPair   *internal.KeyPair
	publicKey []byte
}

// NewSigner returns a Signer for the 32-byte X25519 secret key.
func NewSigner(secretKey []byte) (*Signer, error) {
	kp, err := internal.CalculateKeyPair(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: secret key: %w", ErrInvalidEncoding, err)
	}

	return &Signer{
		keyPair:   kp,
		publicKey: kp.PublicKey.BytesMontgomery(),
	}, nil
}

// Sign is the same as the package level Sign, with the Signer's secret key.
func (s *Signer) Sign(message, random []byte) (signature, output []byte, err error) {
	if len(random) != RandomLength {
		return nil, nil, fmt.Errorf("%w: random input must be %d bytes", ErrInvalidEncoding, RandomLength)
	}

	signature, output = internal.LoadConfiguration().SignWithKeyPair(s.keyPair, message, random)

	return signature, output, nil
}

// Evaluate returns the VRF output for the message without producing a signature. It equals the output returned by Sign
// and Verify for the same message.
func (s *Signer) Evaluate(message []byte) []byte {
	return internal.LoadConfiguration().Evaluate(s.keyPair, message)
}

// PublicKey returns the signer's X25519 public key.
func (s *Signer) PublicKey() []byte {
	pk := make([]byte, len(s.publicKey))
	copy(pk, s.publicKey)

	return pk
}
