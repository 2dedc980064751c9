//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package container

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	paraerrors "github.com/paradux/paradux/internal/errors"
)

// CommandRunner abstracts the external commands the ContainerManager
// shells out to, so tests can substitute a fake without touching the
// host's cryptsetup/mount/mkfs.
type CommandRunner interface {
	// Run executes name with args, feeding stdin if non-nil (otherwise
	// the command inherits the process's standard input), and returns
	// its stdout. A non-zero exit becomes a
	// SubprocessFailed error carrying the exit code and stderr.
	Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)
}

// ExecRunner is the CommandRunner backed by os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	} else {
		cmd.Stdin = os.Stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return nil, paraerrors.ErrSubprocessFailed.Wrap(err)
	}

	e := paraerrors.ErrSubprocessFailed.WithMsg(name + " exited with a non-zero status")
	e.ExitCode = exitErr.ExitCode()
	e.Stderr = stderr.String()
	return stdout.Bytes(), e
}
