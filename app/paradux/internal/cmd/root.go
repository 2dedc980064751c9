//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/paradux/paradux/app"
	"github.com/paradux/paradux/internal/out"
)

const appName = "paradux"

// rootCmd is the entry point for all subcommands: init, edit-stewards,
// edit-user, edit-datasets, edit-metadata-locations,
// export-steward-packages, publish-metadata, and recover.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Personal disaster recovery",
	Long: appName + " v" + app.Version + `
>> Shard your recovery secret among people you trust, so you can
>> get back into your own life after a disaster.`,
	// -v/-vv lift the log level before any command touches the
	// logger singleton, which reads PARADUX_LOG_LEVEL lazily on its
	// first call.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		out.PrintBanner(app.Version)

		switch verbose, _ := cmd.Flags().GetCount("verbose"); {
		case verbose >= 2:
			os.Setenv("PARADUX_LOG_LEVEL", "DEBUG")
		case verbose == 1:
			os.Setenv("PARADUX_LOG_LEVEL", "INFO")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v",
		"increase log verbosity (-v for info, -vv for trace/debug)")
}
