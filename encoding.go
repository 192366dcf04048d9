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

// Signature holds the three components of an encoded signature. Decoding only splits the components: their validity is
// checked by Verify.
type Signature struct {
	// Challenge is the encoded challenge scalar h. Its most significant bit holds the x-coordinate sign of the Edwards
	// public key the signature was computed against.
	Challenge []byte `json:"h"`

	// Response is the encoded response scalar s.
	Response []byte `json:"s"`

	// VRFPoint is the compressed VRF point Kv.
	VRFPoint []byte `json:"v"`
}

// DecodeSignature splits the 96-byte encoding into its components.
func DecodeSignature(input []byte) (*Signature, error) {
	if len(input) != SignatureLength {
		return nil, fmt.Errorf("%w: signature must be %d bytes", ErrInvalidEncoding, SignatureLength)
	}

	s := &Signature{
		Challenge: make([]byte, internal.ScalarLength),
		Response:  make([]byte, internal.ScalarLength),
		VRFPoint:  make([]byte, internal.ElementLength),
	}

	copy(s.Challenge, input[:internal.ScalarLength])
	copy(s.Response, input[internal.ScalarLength:2*internal.ScalarLength])
	copy(s.VRFPoint, input[2*internal.ScalarLength:])

	return s, nil
}

// Encode returns the 96-byte encoding h || s || Kv of the signature.
func (s *Signature) Encode() []byte {
	out := make([]byte, 0, SignatureLength)
	out = append(out, s.Challenge...)
	out = append(out, s.Response...)

	return append(out, s.VRFPoint...)
}

// PublicKeySign returns the x-coordinate sign bit of the Edwards public key recorded in the challenge.
func (s *Signature) PublicKeySign() int {
	if len(s.Challenge) != internal.ScalarLength {
		return 0
	}

	return int(s.Challenge[internal.ScalarLength-1] >> 7)
}
