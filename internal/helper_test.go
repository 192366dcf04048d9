// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"

	"filippo.io/edwards25519"
)

const vectorFile = "../testdata/vectors.json"

type vector struct {
	Name          string `json:"Name"`
	SecretKey     string `json:"SecretKey"`
	PublicKey     string `json:"PublicKey"`
	Message       string `json:"Message"`
	Random        string `json:"Random"`
	EdwardsSecret string `json:"EdwardsSecret"`
	EdwardsPublic string `json:"EdwardsPublic"`
	VRFBase       string `json:"VRFBase"`
	VRFPoint      string `json:"VRFPoint"`
	Nonce         string `json:"Nonce"`
	Signature     string `json:"Signature"`
	VRFOutput     string `json:"VRFOutput"`
	NaturalSign   int    `json:"NaturalSign"`
	VerifyOnly    bool   `json:"VerifyOnly"`
}

func loadVectors(t *testing.T) []vector {
	t.Helper()

	contents, err := os.ReadFile(vectorFile)
	if err != nil {
		t.Fatal(err)
	}

	var v []vector
	if err = json.Unmarshal(contents, &v); err != nil {
		t.Fatal(err)
	}

	return v
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func randomBytes(t *testing.T, length int) []byte {
	t.Helper()

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}

	return b
}

func randomScalar(t *testing.T) *Scalar {
	t.Helper()
	return NewScalar().SetUniformBytes(randomBytes(t, 64))
}

func decodeElement(t *testing.T, s string) *Element {
	t.Helper()

	e := NewElement()
	if err := e.Decode(decodeHex(t, s)); err != nil {
		t.Fatal(err)
	}

	return e
}

func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Comparison and arithmetic helpers only the tests need.

func (e *Element) Equal(element *Element) int {
	return e.point.Equal(&element.point)
}

func (e *Element) Set(element *Element) *Element {
	e.point.Set(&element.point)
	return e
}

func (e *Element) Add(element *Element) *Element {
	e.point.Add(&e.point, &element.point)
	return e
}

func (e *Element) Subtract(element *Element) *Element {
	e.point.Subtract(&e.point, &element.point)
	return e
}

func (s *Scalar) Equal(scalar *Scalar) int {
	return s.scalar.Equal(&scalar.scalar)
}

func (s *Scalar) IsZero() bool {
	return s.scalar.Equal(edwards25519.NewScalar()) == 1
}

func (s *Scalar) Add(scalar *Scalar) *Scalar {
	s.scalar.Add(&s.scalar, &scalar.scalar)
	return s
}

func (s *Scalar) Subtract(scalar *Scalar) *Scalar {
	s.scalar.Subtract(&s.scalar, &scalar.scalar)
	return s
}

func (s *Scalar) Multiply(scalar *Scalar) *Scalar {
	s.scalar.Multiply(&s.scalar, &scalar.scalar)
	return s
}

// naturalSign returns the x-coordinate sign of k·B for the clamped secret k, before normalisation.
func naturalSign(t *testing.T, k []byte) int {
	t.Helper()

	s := NewScalar()
	if err := s.SetClamped(k); err != nil {
		t.Fatal(err)
	}

	return NewElement().BaseMultiply(s).SignBit()
}
