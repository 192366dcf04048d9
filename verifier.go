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

// Verifier holds a validated public key, for repeated verifications against the same signer. It is safe for concurrent
// use.
type Verifier struct {
	key       *internal.VerificationKey
	publicKey []byte
}

// NewVerifier returns a Verifier for the 32-byte X25519 public key. It returns an error wrapping ErrInvalidEncoding if
// the key is not a canonical encoding of a point in the prime-order subgroup.
func NewVerifier(publicKey []byte) (*Verifier, error) {
	key, err := internal.NewVerificationKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidEncoding, err)
	}

	pk := make([]byte, len(publicKey))
	copy(pk, publicKey)

	return &Verifier{
		key:       key,
		publicKey: pk,
	}, nil
}

// Verify is the same as the package level Verify, with the Verifier's public key.
//
// A signature records which of the two Edwards keys sharing the public key's u-coordinate it was made with. Sign always
// uses the even one, but a signature made with the odd one also verifies, with a different VRF output. Applications
// relying on a unique output per key and message should reject signatures whose Signature.PublicKeySign is 1.
func (v *Verifier) Verify(message, signature []byte) ([]byte, error) {
	return internal.LoadConfiguration().VerifyWithKey(v.key, message, signature)
}

// PublicKey returns the verifier's X25519 public key.
func (v *Verifier) PublicKey() []byte {
	pk := make([]byte, len(v.publicKey))
	copy(pk, v.publicKey)

	return pk
}
