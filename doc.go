// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package vxeddsa implements VXEdDSA, the verifiable variant of XEdDSA described in the Signal specifications
// (https://signal.org/docs/specifications/xeddsa).
//
// A VXEdDSA signature is a Schnorr signature over edwards25519 made with an X25519 key pair, that also proves a
// verifiable random function (VRF) output: the output is uniquely determined by the secret key and the message, and
// anyone holding the public key can check it from the signature.
//
// Randomness is never acquired internally: Sign takes the caller's 32 random bytes as an argument. Sign and Verify
// are pure functions and are safe for concurrent use. Signer and Verifier convert a key once for repeated use.
package vxeddsa
