//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package shamir

import (
	"errors"
	"math/big"
	"testing"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/pkg/mersenne"
	"github.com/stretchr/testify/require"
)

func testPrime(t *testing.T) *big.Int {
	t.Helper()
	p, err := mersenne.SelectByBits(127)
	require.NoError(t, err)
	return p.Value()
}

func TestSplitAndReconstructRoundTrip(t *testing.T) {
	prime := testPrime(t)
	secret := big.NewInt(123456789)

	gen, err := Split(secret, 3, prime)
	require.NoError(t, err)

	shares := []Share{gen.Eval(1), gen.Eval(2), gen.Eval(3)}
	got, err := Reconstruct(shares, prime)
	require.NoError(t, err)
	require.Equal(t, 0, secret.Cmp(got))
}

func TestReconstructAnyQuorumSubset(t *testing.T) {
	prime := testPrime(t)
	secret := big.NewInt(42)

	gen, err := Split(secret, 4, prime)
	require.NoError(t, err)

	all := []Share{gen.Eval(1), gen.Eval(2), gen.Eval(3), gen.Eval(4), gen.Eval(5)}
	for _, subset := range [][]Share{
		{all[0], all[1], all[2], all[3]},
		{all[1], all[2], all[3], all[4]},
		{all[0], all[2], all[3], all[4]},
	} {
		got, err := Reconstruct(subset, prime)
		require.NoError(t, err)
		require.Equal(t, 0, secret.Cmp(got))
	}
}

func TestSplitRejectsOversizedSecret(t *testing.T) {
	prime := testPrime(t)
	_, err := Split(prime, 2, prime)
	require.True(t, errors.Is(err, paraerrors.ErrSecretTooLarge))
}

func TestSplitRejectsLowThreshold(t *testing.T) {
	prime := testPrime(t)
	_, err := Split(big.NewInt(1), 1, prime)
	require.True(t, errors.Is(err, paraerrors.ErrThresholdTooSmall))
}

func TestReconstructRejectsTooFewShares(t *testing.T) {
	prime := testPrime(t)
	_, err := Reconstruct([]Share{{X: 1, Y: big.NewInt(1)}}, prime)
	require.True(t, errors.Is(err, paraerrors.ErrNotEnoughShares))
}

func TestReconstructRejectsDuplicateX(t *testing.T) {
	prime := testPrime(t)
	shares := []Share{
		{X: 1, Y: big.NewInt(1)},
		{X: 1, Y: big.NewInt(2)},
	}
	_, err := Reconstruct(shares, prime)
	require.True(t, errors.Is(err, paraerrors.ErrDuplicateX))
}

func TestResumeMatchesSplit(t *testing.T) {
	prime := testPrime(t)
	secret := big.NewInt(7)

	gen, err := Split(secret, 2, prime)
	require.NoError(t, err)
	share := gen.Eval(10)

	resumed := Resume(secret, gen.Polynomial(), prime)
	require.Equal(t, 0, share.Y.Cmp(resumed.Eval(10).Y))
}
