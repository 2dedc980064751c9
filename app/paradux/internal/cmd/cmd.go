//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package cmd implements paradux's cobra command tree. Each command
// resolves its own Orchestrator and is otherwise free of core logic:
// all of that lives in pkg/orchestrator and below.
package cmd

import (
	"fmt"
	"os"
)

// Initialize registers every subcommand on the root command. Called
// once from main before Execute.
func Initialize() {
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newEditStewardsCommand())
	rootCmd.AddCommand(newEditUserCommand())
	rootCmd.AddCommand(newEditDatasetsCommand())
	rootCmd.AddCommand(newEditMetadataLocationsCommand())
	rootCmd.AddCommand(newExportStewardPackagesCommand())
	rootCmd.AddCommand(newPublishMetadataCommand())
	rootCmd.AddCommand(newRecoverCommand())
}

// Execute runs the root command, printing a one-line error summary and
// exiting non-zero on failure. No stack trace is printed, at any log
// level.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
