//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package datatransfer

import (
	"context"
	"net/url"
	"testing"

	"github.com/paradux/paradux/pkg/entity"
	"github.com/stretchr/testify/require"
)

func TestScpBackendSupportsSchemes(t *testing.T) {
	b := ScpBackend{}
	require.True(t, b.Supports("scp"))
	require.True(t, b.Supports("ssh"))
	require.False(t, b.Supports("s3"))
}

func TestDispatcherSkipsUnsupportedScheme(t *testing.T) {
	u, err := url.Parse("s3://bucket/key")
	require.NoError(t, err)

	d := NewDispatcher()
	err = d.Upload(context.Background(), "/tmp/does-not-matter", entity.DataLocation{URL: u})
	require.NoError(t, err)
}

func TestRemoteTargetWithoutCredentials(t *testing.T) {
	u, err := url.Parse("scp://host.example.com/path/to/file")
	require.NoError(t, err)

	target := remoteTarget(entity.DataLocation{URL: u})
	require.Equal(t, "host.example.com:path/to/file", target)
}

func TestRemoteTargetWithSshCredentials(t *testing.T) {
	u, err := url.Parse("scp://host.example.com/path/to/file")
	require.NoError(t, err)

	loc := entity.DataLocation{
		URL:         u,
		Credentials: entity.SshCredentials{Username: "bob"},
	}
	target := remoteTarget(loc)
	require.Equal(t, "bob@host.example.com:path/to/file", target)
}
