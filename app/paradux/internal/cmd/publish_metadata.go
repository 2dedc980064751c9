//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/orchestrator"
)

func newPublishMetadataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish-metadata",
		Short: "Export and upload recovery metadata to the configured locations",
		Run: func(cmd *cobra.Command, args []string) {
			o, err := orchestrator.New()
			if err != nil {
				log.FatalLn(err)
			}
			if err := o.PublishMetadata(context.Background()); err != nil {
				log.FatalLn(err)
			}
			fmt.Println("recovery metadata published.")
		},
	}
}
