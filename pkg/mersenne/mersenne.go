//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package mersenne selects the Mersenne-prime finite field the Shamir
// share engine operates over.
package mersenne

import (
	"math/big"

	paraerrors "github.com/paradux/paradux/internal/errors"
)

// exponents is the fixed, ordered sequence of Mersenne exponents Paradux
// draws its field primes from. This sequence MUST NOT change: every
// persisted SecretsRecord references one of its indices by position.
var exponents = []int{
	1, 2, 3, 5, 7, 13, 17, 19, 31, 61, 89, 107, 127, 521, 607,
	1279, 2203, 2281, 3217, 4253, 4423, 9689,
}

// Prime is a Mersenne prime p = 2^E[n] - 1, identified by its index n
// into the fixed exponent sequence.
type Prime struct {
	index int
	value *big.Int
}

// Index returns the prime's position in the fixed exponent sequence,
// the form it is persisted in.
func (p Prime) Index() int { return p.index }

// Value returns the prime itself, 2^E[index] - 1.
func (p Prime) Value() *big.Int { return p.value }

// FromIndex reconstructs a Prime from a previously persisted index.
func FromIndex(index int) (Prime, error) {
	if index < 0 || index >= len(exponents) {
		return Prime{}, paraerrors.ErrParameterOutOfRange.WithMsg(
			"mersenne index out of range")
	}
	return Prime{index: index, value: valueAt(index)}, nil
}

// SelectByBits picks the smallest Mersenne prime in the fixed sequence
// whose exponent is at least bits. It fails ParameterOutOfRange if bits
// exceeds the sequence's largest exponent.
func SelectByBits(bits int) (Prime, error) {
	for i, e := range exponents {
		if e >= bits {
			return Prime{index: i, value: valueAt(i)}, nil
		}
	}
	return Prime{}, paraerrors.ErrParameterOutOfRange.WithMsg(
		"no mersenne prime large enough for the requested bit length")
}

func valueAt(index int) *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), uint(exponents[index]))
	return p.Sub(p, big.NewInt(1))
}
