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

	"filippo.io/edwards25519"
)

const (
	// ScalarLength is the byte length of an encoded scalar.
	ScalarLength = 32

	// ElementLength is the byte length of a compressed element.
	ElementLength = 32
)

var (
	errElementLength     = errors.New("invalid element length")
	errElementEncoding   = errors.New("invalid element encoding")
	errElementCanonical  = errors.New("non-canonical element encoding")
	errElementIdentity   = errors.New("element is the identity")
	errElementSmallOrder = errors.New("element is not in the prime-order subgroup")
	errScalarLength      = errors.New("invalid scalar length")
	errScalarCanonical   = errors.New("non-canonical scalar encoding")

	scalarOne, _   = edwards25519.NewScalar().SetCanonicalBytes(append([]byte{1}, make([]byte, 31)...))
	scalarOrderM1  = edwards25519.NewScalar().Negate(scalarOne) // L - 1
	identityPoint  = edwards25519.NewIdentityPoint()
	generatorPoint = edwards25519.NewGeneratorPoint()
)

// Element is an element of the edwards25519 group. Operations mutate and return the receiver.
type Element struct {
	point edwards25519.Point
}

// NewElement returns the identity element.
func NewElement() *Element {
	e := &Element{}
	e.point.Set(identityPoint)

	return e
}

// Base returns the standard base point B.
func Base() *Element {
	e := &Element{}
	e.point.Set(generatorPoint)

	return e
}

// Copy returns a copy of the element.
func (e *Element) Copy() *Element {
	c := &Element{}
	c.point.Set(&e.point)

	return c
}

// Negate sets the receiver to -e.
func (e *Element) Negate() *Element {
	e.point.Negate(&e.point)
	return e
}

// Multiply sets the receiver to s·e, in constant time.
func (e *Element) Multiply(s *Scalar) *Element {
	e.point.ScalarMult(&s.scalar, &e.point)
	return e
}

// BaseMultiply sets the receiver to s·B, in constant time.
func (e *Element) BaseMultiply(s *Scalar) *Element {
	e.point.ScalarBaseMult(&s.scalar)
	return e
}

// VarTimeDoubleMultiply sets the receiver to a·p + b·q. It leaks the scalars through timing and must only be used on
// public values.
func (e *Element) VarTimeDoubleMultiply(a *Scalar, p *Element, b *Scalar, q *Element) *Element {
	e.point.VarTimeMultiScalarMult(
		[]*edwards25519.Scalar{&a.scalar, &b.scalar},
		[]*edwards25519.Point{&p.point, &q.point},
	)

	return e
}

// MultiplyByCofactor sets the receiver to 8·e.
func (e *Element) MultiplyByCofactor() *Element {
	e.point.MultByCofactor(&e.point)
	return e
}

// IsIdentity returns whether the element is the identity.
func (e *Element) IsIdentity() bool {
	return e.point.Equal(identityPoint) == 1
}

// IsTorsionFree returns whether the element belongs to the prime-order subgroup, i.e. whether L·e is the identity.
func (e *Element) IsTorsionFree() bool {
	var q edwards25519.Point
	q.ScalarMult(scalarOrderM1, &e.point)
	q.Add(&q, &e.point)

	return q.Equal(identityPoint) == 1
}

// SignBit returns the sign bit of the element's compressed encoding, i.e. the parity of its x-coordinate.
func (e *Element) SignBit() int {
	return int(e.point.Bytes()[ElementLength-1] >> 7)
}

// Encode returns the compressed 32-byte encoding of the element.
func (e *Element) Encode() []byte {
	return e.point.Bytes()
}

// BytesMontgomery returns the u-coordinate of the equivalent point on Curve25519.
func (e *Element) BytesMontgomery() []byte {
	return e.point.BytesMontgomery()
}

// Decode sets the receiver to the decoding of data, which must be the canonical encoding of a non-identity element of
// the prime-order subgroup. On error, the receiver is unchanged.
func (e *Element) Decode(data []byte) error {
	if len(data) != ElementLength {
		return errElementLength
	}

	var p edwards25519.Point
	if _, err := p.SetBytes(data); err != nil {
		return errElementEncoding
	}

	if !ctEqual(p.Bytes(), data) {
		return errElementCanonical
	}

	d := &Element{point: p}

	if d.IsIdentity() {
		return errElementIdentity
	}

	if !d.IsTorsionFree() {
		return errElementSmallOrder
	}

	e.point.Set(&p)

	return nil
}

// decodeUnchecked sets the receiver to the point encoded in data, without subgroup or canonicity checks.
func (e *Element) decodeUnchecked(data []byte) error {
	if _, err := e.point.SetBytes(data); err != nil {
		return errElementEncoding
	}

	return nil
}

// Scalar is an integer modulo the order L of the prime-order subgroup. Operations mutate and return the receiver.
type Scalar struct {
	scalar edwards25519.Scalar
}

// NewScalar returns the zero scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Copy returns a copy of the scalar.
func (s *Scalar) Copy() *Scalar {
	c := &Scalar{}
	c.scalar.Set(&s.scalar)

	return c
}

// MultiplyAdd sets the receiver to x * y + z.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	s.scalar.MultiplyAdd(&x.scalar, &y.scalar, &z.scalar)
	return s
}

// Negate sets the receiver to -s.
func (s *Scalar) Negate() *Scalar {
	s.scalar.Negate(&s.scalar)
	return s
}

// Select sets the receiver to a if cond == 1, and to b if cond == 0, in constant time.
func (s *Scalar) Select(a, b *Scalar, cond int) *Scalar {
	wide := make([]byte, 2*ScalarLength)
	copy(wide, b.scalar.Bytes())
	ctCopy(cond, wide[:ScalarLength], a.scalar.Bytes())

	// SetCanonicalBytes branches on the value while checking it is reduced, the wide reduction doesn't.
	return s.SetUniformBytes(wide)
}

// Encode returns the canonical 32-byte little-endian encoding of the scalar.
func (s *Scalar) Encode() []byte {
	return s.scalar.Bytes()
}

// Decode sets the receiver to the canonical little-endian encoding in data. On error, the receiver is unchanged.
func (s *Scalar) Decode(data []byte) error {
	if len(data) != ScalarLength {
		return errScalarLength
	}

	if _, err := s.scalar.SetCanonicalBytes(data); err != nil {
		return errScalarCanonical
	}

	return nil
}

// SetUniformBytes sets the receiver to the 64-byte little-endian integer wide reduced modulo L.
func (s *Scalar) SetUniformBytes(wide []byte) *Scalar {
	if _, err := s.scalar.SetUniformBytes(wide); err != nil {
		panic(err)
	}

	return s
}

// SetClamped sets the receiver to the X25519 clamping of the 32-byte input, reduced modulo L.
func (s *Scalar) SetClamped(k []byte) error {
	if len(k) != ScalarLength {
		return errScalarLength
	}

	if _, err := s.scalar.SetBytesWithClamping(k); err != nil {
		return errScalarLength
	}

	return nil
}
