// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package vxeddsa

import (
	"github.com/bytemare/vxeddsa/internal"
)

const (
	// SecretKeyLength is the byte length of an X25519 secret key.
	SecretKeyLength = internal.ScalarLength

	// PublicKeyLength is the byte length of an X25519 public key, i.e. a Curve25519 u-coordinate.
	PublicKeyLength = internal.MontgomeryLength

	// RandomLength is the byte length of the random input to Sign.
	RandomLength = internal.RandomLength

	// SignatureLength is the byte length of a signature.
	SignatureLength = internal.SignatureLength

	// OutputLength is the byte length of the VRF output.
	OutputLength = internal.OutputLength
)

// Identifier returns the name of the VXEdDSA instantiation implemented by this package.
func Identifier() string {
	return internal.Identifier
}

// Sign signs the message with the X25519 secret key, and returns the 96-byte signature and the 32-byte VRF output.
// random must be 32 bytes from a cryptographically secure source, fresh for each call. The VRF output only depends on
// the secret key and the message.
//
// An error wrapping ErrInvalidEncoding is returned if secretKey or random are not 32 bytes long.
func Sign(secretKey, message, random []byte) (signature, output []byte, err error) {
	return internal.LoadConfiguration().Sign(secretKey, message, random)
}

// Verify checks the signature of the message under the X25519 public key, and returns the VRF output if it is valid.
//
// The returned error wraps ErrInvalidEncoding if the public key or a signature component is malformed, and
// ErrSignatureInvalid if the signature doesn't match the message and public key.
//
// A signature records which of the two Edwards keys sharing the public key's u-coordinate it was made with. Sign always
// uses the even one, but a signature made with the odd one also verifies, with a different VRF output. Applications
// relying on a unique output per key and message should reject signatures whose Signature.PublicKeySign is 1.
func Verify(publicKey, message, signature []byte) ([]byte, error) {
	return internal.LoadConfiguration().Verify(publicKey, message, signature)
}
