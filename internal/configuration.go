// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal implements the core VXEdDSA operations over edwards25519.
package internal

import (
	"crypto/sha512"
	"errors"
	"hash"
)

const (
	// Identifier names the VXEdDSA instantiation: edwards25519 keys in Montgomery form, and SHA-512.
	Identifier = "VXEdDSA-25519-SHA512"

	// RandomLength is the byte length of the caller supplied randomness for signing.
	RandomLength = 32

	// SignatureLength is the byte length of an encoded signature: h || s || Kv.
	SignatureLength = ScalarLength + ScalarLength + ElementLength

	// OutputLength is the byte length of the VRF output.
	OutputLength = 32

	hashPrefixLength = 32

	// Indexes i of the hash_i domain separation prefixes.
	hashToPointIndex = 2
	nonceIndex       = 3
	challengeIndex   = 4
	outputIndex      = 5
)

var (
	// ErrInvalidEncoding is returned when an input doesn't decode to a valid scalar or group element.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrSignatureInvalid is returned when the recomputed challenge doesn't match the signature.
	ErrSignatureInvalid = errors.New("invalid signature")

	core = makeCore(sha512.New)
)

// A Core holds the hash function and the domain separation prefixes used by VXEdDSA. It is immutable and safe for
// concurrent use.
type Core struct {
	newHash  func() hash.Hash
	prefixes [outputIndex + 1][]byte
}

// hashPrefix returns the 32-byte little-endian encoding of 2^256 - 1 - i.
func hashPrefix(i int) []byte {
	p := make([]byte, hashPrefixLength)
	for j := range p {
		p[j] = 0xff
	}

	p[0] = byte(0xff - i)

	return p
}

func makeCore(h func() hash.Hash) *Core {
	c := &Core{newHash: h}

	for _, i := range []int{hashToPointIndex, nonceIndex, challengeIndex, outputIndex} {
		c.prefixes[i] = hashPrefix(i)
	}

	return c
}

// LoadConfiguration returns the VXEdDSA core configuration.
func LoadConfiguration() *Core {
	return core
}

// Hash returns hash_i(input), i.e. the hash of the concatenation of the domain separation prefix for index and input.
func (c *Core) Hash(index int, input ...[]byte) []byte {
	h := c.newHash()
	_, _ = h.Write(c.prefixes[index])

	for _, in := range input {
		_, _ = h.Write(in)
	}

	return h.Sum(nil)
}

// HashToScalar returns hash_i(input) reduced modulo the group order.
func (c *Core) HashToScalar(index int, input ...[]byte) *Scalar {
	return NewScalar().SetUniformBytes(c.Hash(index, input...))
}

// Output returns the VRF output bound to the VRF point kv.
func (c *Core) Output(kv *Element) []byte {
	return c.Hash(outputIndex, kv.Encode())[:OutputLength]
}
