// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package vxeddsa

import "github.com/bytemare/vxeddsa/internal"

var (
	// ErrInvalidEncoding indicates that a key, a signature component, or the random input doesn't have the right length
	// or doesn't decode to a valid scalar or group element.
	ErrInvalidEncoding = internal.ErrInvalidEncoding

	// ErrSignatureInvalid indicates that the signature doesn't match the message and public key.
	ErrSignatureInvalid = internal.ErrSignatureInvalid
)
