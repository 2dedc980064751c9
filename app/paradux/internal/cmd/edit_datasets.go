//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paradux/paradux/internal/config"
	"github.com/paradux/paradux/pkg/configstore"
)

func newEditDatasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-datasets",
		Short: "Edit the list of datasets to back up",
		Run: func(cmd *cobra.Command, args []string) {
			runEdit(configstore.Datasets, config.DatasetsFileName, "Datasets", false)
		},
	}
}
