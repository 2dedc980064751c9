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

func newExportStewardPackagesCommand() *cobra.Command {
	var asJSON bool
	var stewardID string

	exportCmd := &cobra.Command{
		Use:   "export-steward-packages",
		Short: "Produce the recovery packages handed to each steward",
		Run: func(cmd *cobra.Command, args []string) {
			o, err := orchestrator.New()
			if err != nil {
				log.FatalLn(err)
			}

			packages, err := o.ExportStewardPackages(context.Background(), stewardID)
			if err != nil {
				log.FatalLn(err)
			}

			for i, pkg := range packages {
				if i > 0 {
					fmt.Println("--------------------------------------------------------------------------------")
				}
				if asJSON {
					out, err := pkg.AsJSON()
					if err != nil {
						log.FatalLn(err)
					}
					fmt.Println(string(out))
				} else {
					fmt.Print(pkg.AsText())
				}
			}
		},
	}

	exportCmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON instead of the plain-text sheet")
	exportCmd.Flags().StringVar(&stewardID, "stewardid", "", "only export the package for this steward id")

	return exportCmd
}
