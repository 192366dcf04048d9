// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package vxeddsa_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/vxeddsa"
)

func TestDecodeSignature(t *testing.T) {
	encoded := decodeHex(t, aliceChallenge+aliceResponse+aliceVRFPoint)

	sig, err := vxeddsa.DecodeSignature(encoded)
	require.NoError(t, err)

	assert.Equal(t, decodeHex(t, aliceChallenge), sig.Challenge)
	assert.Equal(t, decodeHex(t, aliceResponse), sig.Response)
	assert.Equal(t, decodeHex(t, aliceVRFPoint), sig.VRFPoint)
	assert.Equal(t, 0, sig.PublicKeySign())
	assert.Equal(t, encoded, sig.Encode())

	// The decoded components don't alias the input.
	encoded[0] ^= 0xff
	assert.Equal(t, decodeHex(t, aliceChallenge), sig.Challenge)
}

func TestDecodeSignature_InvalidLength(t *testing.T) {
	for _, l := range []int{0, 32, 64, 95, 97} {
		_, err := vxeddsa.DecodeSignature(make([]byte, l))
		assert.ErrorIs(t, err, vxeddsa.ErrInvalidEncoding)
	}
}

func TestSignature_PublicKeySign(t *testing.T) {
	encoded := decodeHex(t, aliceChallenge+aliceResponse+aliceVRFPoint)

	sig, err := vxeddsa.DecodeSignature(flipBit(encoded, 255))
	require.NoError(t, err)
	assert.Equal(t, 1, sig.PublicKeySign())

	assert.Equal(t, 0, (&vxeddsa.Signature{}).PublicKeySign())
}

func TestSignature_JSON(t *testing.T) {
	sig, err := vxeddsa.DecodeSignature(decodeHex(t, aliceChallenge+aliceResponse+aliceVRFPoint))
	require.NoError(t, err)

	enc, err := json.Marshal(sig)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(enc, &fields))
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "h")
	assert.Contains(t, fields, "s")
	assert.Contains(t, fields, "v")
}
