//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataLocationParsesSshCredentials(t *testing.T) {
	raw := `{
		"url": "scp://example.com/backups",
		"credentials": {"ssh-user": "bob", "ssh-private-key": "not-a-real-key"}
	}`
	var loc DataLocation
	err := loc.UnmarshalJSON([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, "scp", loc.URL.Scheme)
	creds, ok := loc.Credentials.(SshCredentials)
	require.True(t, ok)
	require.Equal(t, "bob", creds.Username)
}

func TestDataLocationRejectsSchemeMismatch(t *testing.T) {
	raw := `{
		"url": "s3://bucket/key",
		"credentials": {"ssh-user": "bob", "ssh-private-key": "not-a-real-key"}
	}`
	var loc DataLocation
	err := loc.UnmarshalJSON([]byte(raw))
	require.Error(t, err)
}

func TestDataLocationRejectsUnknownCredentialShape(t *testing.T) {
	raw := `{"url": "https://example.com", "credentials": {"mystery": "value"}}`
	var loc DataLocation
	err := loc.UnmarshalJSON([]byte(raw))
	require.Error(t, err)
}

func TestDataLocationWithoutCredentials(t *testing.T) {
	raw := `{"url": "https://example.com/metadata"}`
	var loc DataLocation
	err := loc.UnmarshalJSON([]byte(raw))
	require.NoError(t, err)
	require.Nil(t, loc.Credentials)
}
