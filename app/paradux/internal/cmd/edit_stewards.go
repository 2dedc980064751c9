//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paradux/paradux/internal/config"
	"github.com/paradux/paradux/pkg/configstore"
)

func newEditStewardsCommand() *cobra.Command {
	var clean bool

	editCmd := &cobra.Command{
		Use:   "edit-stewards",
		Short: "Edit the list of recovery stewards",
		Run: func(cmd *cobra.Command, args []string) {
			runEdit(configstore.Stewards, config.StewardsFileName, "Stewards", clean)
		},
	}

	editCmd.Flags().BoolVar(&clean, "clean", false,
		"discard any draft left over from a previous session before editing")

	return editCmd
}
