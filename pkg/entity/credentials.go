//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package entity

import (
	"encoding/json"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"golang.org/x/crypto/ssh"
)

// Credentials is the sum type a DataLocation's credentials field holds:
// exactly one of PasswordCredentials, SshCredentials or
// AwsApiCredentials.
type Credentials interface {
	credentials()
	// Schemes lists the URL schemes this credential kind is compatible
	// with, for DataLocation parse-time validation.
	Schemes() []string
}

// PasswordCredentials is a username/password pair.
type PasswordCredentials struct {
	Username   string `json:"username"`
	UserSecret string `json:"password"`
}

func (PasswordCredentials) credentials()      {}
func (PasswordCredentials) Schemes() []string { return []string{"http", "https", "ftp"} }

// SshCredentials is a username/private-key pair, used by the scp
// DataTransfer backend.
type SshCredentials struct {
	Username   string `json:"ssh-user"`
	PrivateKey string `json:"ssh-private-key"`
}

func (SshCredentials) credentials()      {}
func (SshCredentials) Schemes() []string { return []string{"scp", "ssh", "sftp"} }

// Signer parses the credential's private key and returns an
// ssh.Signer, failing SchemaViolation if the key is not a valid
// PEM-encoded private key.
func (c SshCredentials) Signer() (ssh.Signer, error) {
	signer, err := ssh.ParsePrivateKey([]byte(c.PrivateKey))
	if err != nil {
		return nil, paraerrors.ErrSchemaViolation.Wrap(err)
	}
	return signer, nil
}

// AwsApiCredentials is an AWS access-key / secret-key pair.
type AwsApiCredentials struct {
	AwsAccessKey string `json:"aws-access-key"`
	AwsSecretKey string `json:"aws-secret-key"`
}

func (AwsApiCredentials) credentials()      {}
func (AwsApiCredentials) Schemes() []string { return []string{"s3"} }

// ParseCredentials dispatches a JSON credentials fragment to the right
// Credentials implementation, based on which fields are present. It
// fails SchemaViolation for an unrecognized shape.
func ParseCredentials(raw json.RawMessage) (Credentials, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, paraerrors.ErrJsonMalformed.Wrap(err)
	}

	switch {
	case has(probe, "ssh-user", "ssh-private-key"):
		var c SshCredentials
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, paraerrors.ErrJsonMalformed.Wrap(err)
		}
		return c, nil
	case has(probe, "aws-access-key", "aws-secret-key"):
		var c AwsApiCredentials
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, paraerrors.ErrJsonMalformed.Wrap(err)
		}
		return c, nil
	case has(probe, "username", "password"):
		var c PasswordCredentials
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, paraerrors.ErrJsonMalformed.Wrap(err)
		}
		return c, nil
	default:
		return nil, paraerrors.ErrSchemaViolation.WithMsg("unknown credential type")
	}
}

func has(m map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

// CompatibleWithScheme reports whether creds may be used against a URL
// of the given scheme.
func CompatibleWithScheme(creds Credentials, scheme string) bool {
	for _, s := range creds.Schemes() {
		if s == scheme {
			return true
		}
	}
	return false
}
