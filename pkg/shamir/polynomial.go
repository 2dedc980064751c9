//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package shamir implements Shamir secret sharing over a Mersenne-prime
// finite field: splitting a secret into a threshold scheme's polynomial
// and reconstructing the secret from shares via Lagrange interpolation.
package shamir

import (
	"crypto/rand"
	"math/big"
)

// Polynomial holds a share-generating polynomial's non-constant
// coefficients, in increasing order of power: coefficients[0] is a_1,
// coefficients[i] is a_{i+1}. The constant term a_0 (the secret) is
// stored separately by the caller and never appears here, so a
// Polynomial on its own reveals nothing about the secret it protects.
type Polynomial []*big.Int

// randomCoefficients samples degree coefficients uniformly from [0, p)
// using a cryptographically strong source.
func randomCoefficients(degree int, p *big.Int) (Polynomial, error) {
	coeffs := make(Polynomial, degree)
	for i := range coeffs {
		c, err := rand.Int(rand.Reader, p)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// evaluate computes secret + coefficients[0]*x + coefficients[1]*x^2 +
// ... mod p via Horner's method, given the polynomial's constant term
// (the secret).
func (poly Polynomial) evaluate(secret, x, p *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(poly) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, poly[i])
		result.Mod(result, p)
	}
	result.Mul(result, x)
	result.Add(result, secret)
	result.Mod(result, p)
	return result
}
