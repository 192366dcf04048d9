// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package vxeddsa

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
)

// KeyPair assembles an X25519 key pair usable with VXEdDSA.
type KeyPair struct {
	SecretKey []byte
	PublicKey []byte
}

// GenerateSecret returns a new clamped X25519 secret key, reading 32 bytes from r. If r is nil, crypto/rand.Reader is
// used.
func GenerateSecret(r io.Reader) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}

	k := make([]byte, SecretKeyLength)
	if _, err := io.ReadFull(r, k); err != nil {
		return nil, fmt.Errorf("could not read secret key: %w", err)
	}

	k[0] &= 248
	k[31] &= 127
	k[31] |= 64

	return k, nil
}

// PublicKey returns the X25519 public key of the secret key.
func PublicKey(secretKey []byte) ([]byte, error) {
	if len(secretKey) != SecretKeyLength {
		return nil, fmt.Errorf("%w: secret key must be %d bytes", ErrInvalidEncoding, SecretKeyLength)
	}

	pk, err := curve25519.X25519(secretKey, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	return pk, nil
}

// GenerateKeyPair returns a new X25519 key pair, reading randomness from r. If r is nil, crypto/rand.Reader is used.
func GenerateKeyPair(r io.Reader) (*KeyPair, error) {
	sk, err := GenerateSecret(r)
	if err != nil {
		return nil, err
	}

	pk, err := PublicKey(sk)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		SecretKey: sk,
		PublicKey: pk,
	}, nil
}
