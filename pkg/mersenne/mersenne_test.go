//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package mersenne

import (
	"errors"
	"testing"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestSelectByBits(t *testing.T) {
	cases := []struct {
		bits    int
		wantIdx int
	}{
		{1, 0},
		{2, 1},
		{4, 3},
		{13, 5},
		{128, 13},
		{9689, 21},
	}
	for _, c := range cases {
		p, err := SelectByBits(c.bits)
		require.NoError(t, err)
		require.Equal(t, c.wantIdx, p.Index())
		require.GreaterOrEqual(t, p.Value().BitLen(), c.bits)
	}
}

func TestSelectByBitsOutOfRange(t *testing.T) {
	_, err := SelectByBits(9690)
	require.True(t, errors.Is(err, paraerrors.ErrParameterOutOfRange))
}

func TestFromIndexRoundTrip(t *testing.T) {
	p, err := SelectByBits(127)
	require.NoError(t, err)

	p2, err := FromIndex(p.Index())
	require.NoError(t, err)
	require.Equal(t, 0, p.Value().Cmp(p2.Value()))
}

func TestFromIndexOutOfRange(t *testing.T) {
	_, err := FromIndex(-1)
	require.True(t, errors.Is(err, paraerrors.ErrParameterOutOfRange))

	_, err = FromIndex(999)
	require.True(t, errors.Is(err, paraerrors.ErrParameterOutOfRange))
}
