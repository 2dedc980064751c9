//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paradux/paradux/internal/config"
	"github.com/paradux/paradux/pkg/configstore"
)

func newEditMetadataLocationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit-metadata-locations",
		Short: "Edit where recovery metadata gets published",
		Run: func(cmd *cobra.Command, args []string) {
			runEdit(configstore.MetadataLocations, config.MetadataFileName, "Metadata locations", false)
		},
	}
}
