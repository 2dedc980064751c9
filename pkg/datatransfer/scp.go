//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package datatransfer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/entity"
)

// ScpBackend uploads via the external scp binary. It requires
// SshCredentials when the destination specifies any credentials at
// all; an uncredentialed scp destination relies on the ambient SSH
// agent/config instead.
type ScpBackend struct{}

func (ScpBackend) Supports(scheme string) bool {
	return scheme == "scp" || scheme == "ssh"
}

func (ScpBackend) Upload(ctx context.Context, localPath string, loc entity.DataLocation) error {
	args := []string{}

	var keyFile string
	if loc.Credentials != nil {
		ssh, ok := loc.Credentials.(entity.SshCredentials)
		if !ok {
			return paraerrors.ErrSchemaViolation.WithMsg("scp backend requires SshCredentials")
		}

		f, err := os.CreateTemp("", "paradux-scp-key-")
		if err != nil {
			return err
		}
		keyFile = f.Name()
		defer func() {
			log.Log().Debug("unlinking scp private key", "path", keyFile)
			os.Remove(keyFile)
		}()

		if err := f.Chmod(0600); err != nil {
			f.Close()
			return err
		}
		if _, err := f.WriteString(ssh.PrivateKey); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		args = append(args, "-i", keyFile)
	}

	remote := remoteTarget(loc)
	args = append(args, localPath, remote)

	cmd := exec.CommandContext(ctx, "scp", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e := paraerrors.ErrSubprocessFailed.WithMsg("scp upload failed")
		e.Stderr = string(out)
		return e
	}
	return nil
}

func remoteTarget(loc entity.DataLocation) string {
	host := loc.URL.Hostname()
	path := strings.TrimPrefix(loc.URL.Path, "/")

	if ssh, ok := loc.Credentials.(entity.SshCredentials); ok {
		return fmt.Sprintf("%s@%s:%s", ssh.Username, host, path)
	}
	return fmt.Sprintf("%s:%s", host, path)
}
