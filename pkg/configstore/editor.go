//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package configstore

import (
	"os"
	"os/exec"
	"strings"

	"github.com/paradux/paradux/internal/env"
	paraerrors "github.com/paradux/paradux/internal/errors"
)

// Editor invokes an interactive text editor on a file. Paradux's edit-*
// commands depend on this external collaborator; the real
// implementation shells out to $EDITOR/$VISUAL.
type Editor interface {
	Invoke(path string) error
}

// ExternalEditor shells out to the user's configured editor, inheriting
// the current process's standard streams so the editor can run
// interactively.
type ExternalEditor struct{}

func (ExternalEditor) Invoke(path string) error {
	editorCmd := env.Editor()
	if strings.TrimSpace(editorCmd) == "" {
		return paraerrors.ErrEditorUnavailable
	}

	fields := strings.Fields(editorCmd)
	fields = append(fields, path)

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return paraerrors.ErrEditorFailed.Wrap(err)
	}
	return nil
}
