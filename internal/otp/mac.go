// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/MKhiriev/go-totp-keeper/models"
)

// hashConstructor returns the hash.Hash factory backing the given algo.
// The SHA256/SHA512 labels select the SHA3 family; see [models.Algo].
func hashConstructor(algo models.Algo) (func() hash.Hash, error) {
	switch algo {
	case models.AlgoSHA1:
		return sha1.New, nil
	case models.AlgoSHA256:
		return sha3.New256, nil
	case models.AlgoSHA512:
		return sha3.New512, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrMac, algo)
	}
}

// OneOffMac computes a single HMAC digest over data, keyed by secret, using
// the hash primitive selected by algo. HMAC accepts keys of any length by
// hashing or padding them internally, so the secret is passed through
// untouched. Deterministic; the only failure is an algo outside the closed
// enum.
func OneOffMac(algo models.Algo, secret, data []byte) ([]byte, error) {
	constructor, err := hashConstructor(algo)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(constructor, secret)
	mac.Write(data)
	return mac.Sum(nil), nil
}
