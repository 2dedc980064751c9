//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package shamir

import (
	"math/big"
	"sort"

	paraerrors "github.com/paradux/paradux/internal/errors"
)

// Generator evaluates a fixed polynomial (secret plus sampled
// coefficients) at arbitrary x values over a fixed prime field. Eval
// never modifies the secret, polynomial or prime it holds, so it is
// safe to reuse across many Eval calls.
type Generator struct {
	secret *big.Int
	poly   Polynomial
	prime  *big.Int
}

// Split samples a new threshold-k polynomial for secret over the field
// modulo prime and returns a Generator that can evaluate it at any x.
//
// Requires 0 <= secret < prime, failing SecretTooLarge otherwise, and
// k >= 2, failing ThresholdTooSmall otherwise.
func Split(secret *big.Int, k int, prime *big.Int) (*Generator, error) {
	if secret.Sign() < 0 || secret.Cmp(prime) >= 0 {
		return nil, paraerrors.ErrSecretTooLarge.WithMsg(
			"secret must satisfy 0 <= secret < prime")
	}
	if k < 2 {
		return nil, paraerrors.ErrThresholdTooSmall.WithMsg(
			"quorum threshold must be at least 2")
	}

	coeffs, err := randomCoefficients(k-1, prime)
	if err != nil {
		return nil, err
	}
	return &Generator{secret: secret, poly: coeffs, prime: prime}, nil
}

// Resume rebuilds a Generator from a previously persisted polynomial and
// secret, without sampling new coefficients. Used to re-derive shares
// from a loaded SecretsRecord.
func Resume(secret *big.Int, poly Polynomial, prime *big.Int) *Generator {
	return &Generator{secret: secret, poly: poly, prime: prime}
}

// Polynomial returns the generator's non-constant coefficients, for
// persistence.
func (g *Generator) Polynomial() Polynomial {
	return g.poly
}

// Eval computes the share at x >= 1.
func (g *Generator) Eval(x uint64) Share {
	bx := new(big.Int).SetUint64(x)
	return Share{X: x, Y: g.poly.evaluate(g.secret, bx, g.prime)}
}

// Reconstruct recovers the secret at x=0 from a set of shares via
// Lagrange interpolation over the field modulo prime.
//
// Requires at least two shares (NotEnoughShares) with no duplicate x
// coordinates (DuplicateX). It accepts any number of shares >= 2 and
// returns whatever value the polynomial of degree len(shares)-1 through
// those points yields at 0; verifying that the share count matches a
// configured quorum is the caller's responsibility.
func Reconstruct(shares []Share, prime *big.Int) (*big.Int, error) {
	if len(shares) < 2 {
		return nil, paraerrors.ErrNotEnoughShares.WithMsg(
			"at least two shares are required to reconstruct a secret")
	}

	sorted := append([]Share(nil), shares...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].X == sorted[i-1].X {
			return nil, paraerrors.ErrDuplicateX.WithMsg(
				"two or more shares share the same x coordinate")
		}
	}

	// L(0) = sum_i y_i * prod_{j != i} (-x_j) * (x_i - x_j)^-1 mod p
	result := new(big.Int)
	for i := range sorted {
		xi := new(big.Int).SetUint64(sorted[i].X)

		numerator := big.NewInt(1)
		denominator := big.NewInt(1)
		for j := range sorted {
			if i == j {
				continue
			}
			xj := new(big.Int).SetUint64(sorted[j].X)

			negXj := new(big.Int).Neg(xj)
			negXj.Mod(negXj, prime)
			numerator.Mul(numerator, negXj)
			numerator.Mod(numerator, prime)

			diff := new(big.Int).Sub(xi, xj)
			diff.Mod(diff, prime)
			denominator.Mul(denominator, diff)
			denominator.Mod(denominator, prime)
		}

		invDenominator := new(big.Int).ModInverse(denominator, prime)
		term := new(big.Int).Mul(sorted[i].Y, numerator)
		term.Mul(term, invDenominator)
		term.Mod(term, prime)

		result.Add(result, term)
		result.Mod(result, prime)
	}
	return result, nil
}
