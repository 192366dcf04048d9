// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package vxeddsa_test

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/bytemare/vxeddsa"
)

const vectorFile = "testdata/vectors.json"

type testVector struct {
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

type vector struct {
	name        string
	secretKey   []byte
	publicKey   []byte
	message     []byte
	random      []byte
	signature   []byte
	output      []byte
	naturalSign int
	verifyOnly  bool
}

func (tv *testVector) decode() (*vector, error) {
	v := &vector{
		name:        tv.Name,
		naturalSign: tv.NaturalSign,
		verifyOnly:  tv.VerifyOnly,
	}

	fields := []struct {
		name string
		in   string
		out  *[]byte
	}{
		{"SecretKey", tv.SecretKey, &v.secretKey},
		{"PublicKey", tv.PublicKey, &v.publicKey},
		{"Message", tv.Message, &v.message},
		{"Random", tv.Random, &v.random},
		{"Signature", tv.Signature, &v.signature},
		{"VRFOutput", tv.VRFOutput, &v.output},
	}

	for _, f := range fields {
		dec, err := hex.DecodeString(f.in)
		if err != nil {
			return nil, fmt.Errorf(" %s decoding errored with %q", f.name, err)
		}

		*f.out = dec
	}

	return v, nil
}

func loadVectors(t *testing.T) []*vector {
	t.Helper()

	contents, err := os.ReadFile(vectorFile)
	if err != nil {
		t.Fatal(err)
	}

	var tvs []testVector
	if err = json.Unmarshal(contents, &tvs); err != nil {
		t.Fatal(err)
	}

	vectors := make([]*vector, len(tvs))

	for i, tv := range tvs {
		v, err := tv.decode()
		if err != nil {
			t.Fatalf("vector %d: %v", i, err)
		}

		vectors[i] = v
	}

	return vectors
}

func randomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := rand.Read(r); err != nil {
		// We can as well not panic and try again in a loop and a counter to stop.
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}

func mustKeyPair(t *testing.T) ([]byte, []byte) {
	t.Helper()

	kp, err := vxeddsa.GenerateKeyPair(nil)
	if err != nil {
		t.Fatal(err)
	}

	return kp.SecretKey, kp.PublicKey
}

func flipBit(in []byte, bit int) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	out[bit/8] ^= 1 << (bit % 8)

	return out
}
