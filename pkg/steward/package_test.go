//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package steward

import (
	"math/big"
	"net/url"
	"testing"

	"github.com/paradux/paradux/pkg/entity"
	"github.com/paradux/paradux/pkg/shamir"
	"github.com/stretchr/testify/require"
)

func testPackage(t *testing.T) Package {
	email := "alice@example.com"
	u, err := url.Parse("https://example.com/metadata")
	require.NoError(t, err)

	return Package{
		User:        entity.User{Name: "Alice", ContactEmail: &email},
		Steward:     entity.Steward{Name: "Bob", AcceptedOn: "20260101-000000"},
		Share:       shamir.Share{X: 1, Y: big.NewInt(42)},
		Mersenne:    12,
		MinStewards: 3,
		MetadataLocations: []entity.DataLocation{
			{URL: u},
		},
		Version: "0.1.0",
	}
}

func TestAsTextContainsRequiredFields(t *testing.T) {
	text := testPackage(t).AsText()
	require.Contains(t, text, "Bob")
	require.Contains(t, text, "Alice")
	require.Contains(t, text, "alice@example.com")
	require.Contains(t, text, "x = 1")
	require.Contains(t, text, "k = 3")
	require.Contains(t, text, "https://example.com/metadata")
}

func TestAsJSONStableKeys(t *testing.T) {
	data, err := testPackage(t).AsJSON()
	require.NoError(t, err)

	s := string(data)
	require.Contains(t, s, `"user"`)
	require.Contains(t, s, `"steward"`)
	require.Contains(t, s, `"stewardshare"`)
	require.Contains(t, s, `"mersenne"`)
	require.Contains(t, s, `"min-stewards"`)
}
