//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/orchestrator"
)

func newRecoverCommand() *cobra.Command {
	recoverCmd := &cobra.Command{
		Use:   "recover",
		Short: "Reconstruct the recovery secret from steward fragments and set a new everyday passphrase",
		Long: `recover reads a JSON array of steward-package fragments from stdin
(exactly min-stewards of them, no more, no less) and uses them to
reconstruct the recovery secret, then prompts for and installs a new
everyday passphrase on the configuration image.`,
		Run: func(cmd *cobra.Command, args []string) {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				log.FatalLn(err)
			}

			shares, mersenneIndex, err := orchestrator.ParseRecoveryFragments(data)
			if err != nil {
				log.FatalLn(err)
			}

			o, err := orchestrator.New()
			if err != nil {
				log.FatalLn(err)
			}
			if err := o.Recover(context.Background(), shares, mersenneIndex); err != nil {
				log.FatalLn(err)
			}

			fmt.Println("everyday passphrase reset. You can now open your paradux configuration as usual.")
		},
	}

	return recoverCmd
}
