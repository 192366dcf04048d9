// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"fmt"
)

const signBitMask = 0x80

// Nonce derives the per-signature secret scalar r from the secret key, the VRF base and VRF points, the caller's
// randomness, and the message.
func (c *Core) Nonce(a *Scalar, bv, kv *Element, random, message []byte) *Scalar {
	return c.HashToScalar(nonceIndex, a.Encode(), bv.Encode(), kv.Encode(), random, message)
}

// Challenge computes the Fiat-Shamir challenge h over the proof transcript.
func (c *Core) Challenge(kv, r, rv, publicKey, bv *Element, message []byte) *Scalar {
	return c.HashToScalar(challengeIndex,
		kv.Encode(),
		r.Encode(),
		rv.Encode(),
		publicKey.Encode(),
		bv.Encode(),
		message,
	)
}

// Sign produces the signature of message under the Montgomery secret key k, and the corresponding VRF output.
func (c *Core) Sign(k, message, random []byte) ([]byte, []byte, error) {
	if len(random) != RandomLength {
		return nil, nil, fmt.Errorf("%w: random input must be %d bytes", ErrInvalidEncoding, RandomLength)
	}

	kp, err := CalculateKeyPair(k)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: secret key: %w", ErrInvalidEncoding, err)
	}

	signature, output := c.SignWithKeyPair(kp, message, random)

	return signature, output, nil
}

// SignWithKeyPair signs with an already converted Edwards key pair. The x-coordinate sign of kp.PublicKey is recorded
// in the most significant bit of the encoded challenge.
func (c *Core) SignWithKeyPair(kp *KeyPair, message, random []byte) ([]byte, []byte) {
	a, pk := kp.SecretKey, kp.PublicKey

	bv := c.HashToPoint(pk, message)
	kv := bv.Copy().Multiply(a)

	r := c.Nonce(a, bv, kv, random, message)
	commitment := NewElement().BaseMultiply(r)
	commitmentV := bv.Copy().Multiply(r)

	h := c.Challenge(kv, commitment, commitmentV, pk, bv, message)
	s := NewScalar().MultiplyAdd(h, a, r)

	// h < L < 2^253, so the top bit of its encoding is free.
	encH := h.Encode()
	encH[ScalarLength-1] |= byte(pk.SignBit()) << 7

	return concatenate(encH, s.Encode(), kv.Encode()), c.Output(kv)
}

// Evaluate returns the VRF output of message under the key pair, without producing a proof.
func (c *Core) Evaluate(kp *KeyPair, message []byte) []byte {
	bv := c.HashToPoint(kp.PublicKey, message)
	return c.Output(bv.Multiply(kp.SecretKey))
}

type proof struct {
	kv      *Element
	h, s    *Scalar
	encH    []byte
	keySign int
}

// decodeProof splits and validates the signature encoding. The sign bit is cleared from the returned challenge
// encoding.
func decodeProof(signature []byte) (*proof, error) {
	if len(signature) != SignatureLength {
		return nil, fmt.Errorf("%w: signature must be %d bytes", ErrInvalidEncoding, SignatureLength)
	}

	p := &proof{
		kv:   NewElement(),
		h:    NewScalar(),
		s:    NewScalar(),
		encH: make([]byte, ScalarLength),
	}

	if err := p.kv.Decode(signature[2*ScalarLength:]); err != nil {
		return nil, fmt.Errorf("%w: VRF point: %w", ErrInvalidEncoding, err)
	}

	copy(p.encH, signature[:ScalarLength])
	p.keySign = int(p.encH[ScalarLength-1] >> 7)
	p.encH[ScalarLength-1] &^= signBitMask

	if err := p.h.Decode(p.encH); err != nil {
		return nil, fmt.Errorf("%w: challenge: %w", ErrInvalidEncoding, err)
	}

	if err := p.s.Decode(signature[ScalarLength : 2*ScalarLength]); err != nil {
		return nil, fmt.Errorf("%w: response: %w", ErrInvalidEncoding, err)
	}

	return p, nil
}

// Verify checks the signature of message under the Montgomery public key u, and returns the VRF output on success.
func (c *Core) Verify(u, message, signature []byte) ([]byte, error) {
	p, err := decodeProof(signature)
	if err != nil {
		return nil, err
	}

	pk, err := ConvertMont(u, p.keySign)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidEncoding, err)
	}

	return c.verify(pk, p, message)
}

// VerifyWithKey is Verify with an already converted public key.
func (c *Core) VerifyWithKey(key *VerificationKey, message, signature []byte) ([]byte, error) {
	p, err := decodeProof(signature)
	if err != nil {
		return nil, err
	}

	return c.verify(key.Select(p.keySign), p, message)
}

func (c *Core) verify(pk *Element, p *proof, message []byte) ([]byte, error) {
	bv := c.HashToPoint(pk, message)
	if bv.IsIdentity() {
		return nil, ErrSignatureInvalid
	}

	// R = sB - hA, Rv = sBv - hKv
	negH := p.h.Copy().Negate()
	commitment := NewElement().VarTimeDoubleMultiply(p.s, Base(), negH, pk)
	commitmentV := NewElement().VarTimeDoubleMultiply(p.s, bv, negH, p.kv)

	expected := c.Challenge(p.kv, commitment, commitmentV, pk, bv, message)
	if !ctEqual(expected.Encode(), p.encH) {
		return nil, ErrSignatureInvalid
	}

	return c.Output(p.kv), nil
}
