//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package secretsstore

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/paradux/paradux/pkg/mersenne"
	"github.com/paradux/paradux/pkg/shamir"
	"github.com/stretchr/testify/require"
)

func TestIssueShareIsIdempotent(t *testing.T) {
	prime, err := mersenne.SelectByBits(127)
	require.NoError(t, err)

	store, err := New(prime, big.NewInt(9999), 3)
	require.NoError(t, err)

	first := store.IssueShare("steward-a")
	second := store.IssueShare("steward-a")
	require.Equal(t, first, second)
}

func TestIssueShareNeverReusesWatermark(t *testing.T) {
	prime, err := mersenne.SelectByBits(127)
	require.NoError(t, err)
	store, err := New(prime, big.NewInt(42), 2)
	require.NoError(t, err)

	a := store.IssueShare("a")
	b := store.IssueShare("b")
	require.NotEqual(t, a.X, b.X)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	prime, err := mersenne.SelectByBits(127)
	require.NoError(t, err)
	secret := big.NewInt(123456)
	store, err := New(prime, secret, 3)
	require.NoError(t, err)

	a := store.IssueShare("a")
	b := store.IssueShare("b")

	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, store.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, reloaded.MinStewards())
	require.Equal(t, prime.Index(), reloaded.Mersenne())

	gotA, ok := reloaded.IssuedShare("a")
	require.True(t, ok)
	require.Equal(t, a, gotA)

	gotB, ok := reloaded.IssuedShare("b")
	require.True(t, ok)
	require.Equal(t, b, gotB)

	reconstructed, err := shamir.Reconstruct([]shamir.Share{a, b, reloaded.IssueShare("c")}, prime.Value())
	require.NoError(t, err)
	require.Equal(t, 0, secret.Cmp(reconstructed))
}
