//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package container

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PassphrasePrompter reads a passphrase from the operator. Implementations
// must not echo the passphrase to the terminal.
type PassphrasePrompter interface {
	Prompt(message string) ([]byte, error)
}

// TerminalPrompter reads a non-echoing passphrase from the controlling
// terminal.
type TerminalPrompter struct{}

func (TerminalPrompter) Prompt(message string) ([]byte, error) {
	fmt.Fprint(os.Stderr, message)
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return passphrase, nil
}
