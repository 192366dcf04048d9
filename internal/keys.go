// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"errors"

	"filippo.io/edwards25519/field"
)

// MontgomeryLength is the byte length of a Curve25519 u-coordinate.
const MontgomeryLength = 32

var (
	errMontgomeryLength    = errors.New("invalid public key length")
	errMontgomeryCanonical = errors.New("public key is not a canonical u-coordinate")
	errMontgomeryTwist     = errors.New("public key is not on the curve")
)

// KeyPair holds the Edwards form of a Montgomery key pair. PublicKey always has an even x-coordinate.
type KeyPair struct {
	SecretKey *Scalar
	PublicKey *Element
}

// CalculateKeyPair derives the Edwards key pair from a 32-byte Montgomery secret key. The secret is clamped as in
// X25519, so that the returned public key has the same u-coordinate as the X25519 public key.
func CalculateKeyPair(k []byte) (*KeyPair, error) {
	s := NewScalar()
	if err := s.SetClamped(k); err != nil {
		return nil, err
	}

	sign := NewElement().BaseMultiply(s).SignBit()
	a := NewScalar().Select(s.Copy().Negate(), s, sign)

	return &KeyPair{
		SecretKey: a,
		PublicKey: NewElement().BaseMultiply(a),
	}, nil
}

// ConvertMont returns the Edwards point with the given x-coordinate sign whose Montgomery u-coordinate is u. It fails
// if u is not canonical, doesn't correspond to a point on the curve, or to a point outside the prime-order subgroup.
func ConvertMont(u []byte, sign int) (*Element, error) {
	if len(u) != MontgomeryLength {
		return nil, errMontgomeryLength
	}

	fu, err := new(field.Element).SetBytes(u)
	if err != nil {
		return nil, errMontgomeryLength
	}

	// Rejects u >= p and any u with the top bit set.
	if !ctEqual(fu.Bytes(), u) {
		return nil, errMontgomeryCanonical
	}

	p, err := elementFromY(montgomeryToEdwardsY(fu), sign)
	if err != nil {
		return nil, errMontgomeryTwist
	}

	e := NewElement()
	if err = e.Decode(p.Encode()); err != nil {
		return nil, err
	}

	return e, nil
}

// VerificationKey holds the two Edwards points sharing a Montgomery u-coordinate, indexed by their sign bit.
type VerificationKey struct {
	points [2]*Element
}

// NewVerificationKey converts the Montgomery public key u once for repeated verifications.
func NewVerificationKey(u []byte) (*VerificationKey, error) {
	even, err := ConvertMont(u, 0)
	if err != nil {
		return nil, err
	}

	return &VerificationKey{points: [2]*Element{even, even.Copy().Negate()}}, nil
}

// Select returns the point with the given sign bit.
func (k *VerificationKey) Select(sign int) *Element {
	return k.points[sign&1]
}
