//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paradux/paradux/internal/config"
	"github.com/paradux/paradux/pkg/configstore"
)

func newEditUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-user",
		Short: "Edit your own contact information",
		Run: func(cmd *cobra.Command, args []string) {
			runEdit(configstore.UserStore, config.UserFileName, "User info", false)
		},
	}
}
