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

var (
	errHashToPoint = errors.New("internal error: Elligator2 output is not on the curve")

	feOne       = new(field.Element).One()
	feNonSquare = new(field.Element).Mult32(feOne, 2)
	feMontA     = new(field.Element).Mult32(feOne, 486662)
	feMontNegA  = new(field.Element).Negate(feMontA)
)

// elligator2 maps the field element r to the u-coordinate of a point on Curve25519, in constant time.
func elligator2(r *field.Element) *field.Element {
	// u1 = -A / (1 + 2r²). The denominator never vanishes since -1/2 is not a square.
	den := new(field.Element).Square(r)
	den.Multiply(den, feNonSquare)
	den.Add(den, feOne)

	u1 := new(field.Element).Invert(den)
	u1.Multiply(u1, feMontNegA)

	// w = u1³ + A·u1² + u1
	w := new(field.Element).Square(u1)
	t := new(field.Element).Multiply(feMontA, u1)
	w.Add(w, t)
	w.Add(w, feOne)
	w.Multiply(w, u1)

	_, isSquare := new(field.Element).SqrtRatio(w, feOne)

	u2 := new(field.Element).Subtract(feMontNegA, u1)

	return new(field.Element).Select(u1, u2, isSquare)
}

// montgomeryToEdwardsY returns the Edwards y-coordinate (u - 1) / (u + 1) of the Montgomery u-coordinate.
func montgomeryToEdwardsY(u *field.Element) *field.Element {
	num := new(field.Element).Subtract(u, feOne)
	den := new(field.Element).Add(u, feOne)

	return num.Multiply(num, den.Invert(den))
}

// elementFromY decodes the point of Edwards y-coordinate y and x-coordinate sign, without subgroup checks.
func elementFromY(y *field.Element, sign int) (*Element, error) {
	enc := y.Bytes()
	enc[ElementLength-1] |= byte(sign&1) << 7

	e := NewElement()
	if err := e.decodeUnchecked(enc); err != nil {
		return nil, err
	}

	return e, nil
}

// HashToPoint deterministically maps the public key and message to an element of the prime-order subgroup.
func (c *Core) HashToPoint(publicKey *Element, message []byte) *Element {
	h := c.Hash(hashToPointIndex, publicKey.Encode(), message)

	// The field element takes the low 255 bits, and the 256th bit gives the sign.
	r, err := new(field.Element).SetBytes(h[:32])
	if err != nil {
		panic(err)
	}

	sign := int(h[31] >> 7)

	p, err := elementFromY(montgomeryToEdwardsY(elligator2(r)), sign)
	if err != nil {
		panic(errHashToPoint)
	}

	return p.MultiplyByCofactor()
}
