//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package steward

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/paradux/paradux/pkg/entity"
	"github.com/paradux/paradux/pkg/mersenne"
	"github.com/paradux/paradux/pkg/secretsstore"
	"github.com/stretchr/testify/require"
)

func TestBuildAllAssignsXInAcceptedOnOrder(t *testing.T) {
	prime, err := mersenne.SelectByBits(127)
	require.NoError(t, err)
	store, err := secretsstore.New(prime, big.NewInt(9999), 2)
	require.NoError(t, err)

	stewards := entity.StewardsFile{Stewards: map[string]entity.Steward{
		"steward-d": {Name: "Dana", AcceptedOn: "20260104-000000"},
		"steward-b": {Name: "Bob", AcceptedOn: "20260102-000000"},
		"steward-a": {Name: "Alice", AcceptedOn: "20260101-000000"},
		"steward-c": {Name: "Carl", AcceptedOn: "20260103-000000"},
	}}

	secretsPath := filepath.Join(t.TempDir(), "secrets.json")
	packages, err := BuildAll(entity.User{Name: "Owner"}, stewards, store, secretsPath, nil, "0.1.0")
	require.NoError(t, err)
	require.Len(t, packages, 4)

	wantOrder := []string{"Alice", "Bob", "Carl", "Dana"}
	for i, want := range wantOrder {
		require.Equal(t, want, packages[i].Steward.Name)
		require.Equal(t, uint64(i+1), packages[i].Share.X)
	}
}

func TestBuildAllXAssignmentIsStableAcrossRuns(t *testing.T) {
	prime, err := mersenne.SelectByBits(127)
	require.NoError(t, err)
	store, err := secretsstore.New(prime, big.NewInt(1234), 2)
	require.NoError(t, err)

	stewards := entity.StewardsFile{Stewards: map[string]entity.Steward{
		"steward-z": {Name: "Zed", AcceptedOn: "20260101-000000"},
		"steward-y": {Name: "Yara", AcceptedOn: "20260102-000000"},
	}}

	secretsPath := filepath.Join(t.TempDir(), "secrets.json")
	first, err := BuildAll(entity.User{}, stewards, store, secretsPath, nil, "0.1.0")
	require.NoError(t, err)

	second, err := BuildAll(entity.User{}, stewards, store, secretsPath, nil, "0.1.0")
	require.NoError(t, err)

	require.Equal(t, first, second)
}
