//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/configstore"
	"github.com/paradux/paradux/pkg/orchestrator"
)

// runEdit mounts the container and drives one interactive edit/
// validate/promote cycle for store against masterFileName: print the
// report, and on any ERROR ask whether to re-open the editor or
// discard the edit. A clean report promotes automatically. If clean is
// true, any draft left over from a previous, never-promoted session is
// discarded before the editor opens.
func runEdit[T any](store configstore.Store[T], masterFileName, label string, clean bool) {
	o, err := orchestrator.New()
	if err != nil {
		log.FatalLn(err)
	}

	reader := bufio.NewReader(os.Stdin)
	err = orchestrator.EditLoop(context.Background(), o, store, configstore.ExternalEditor{}, masterFileName, clean,
		func(report configstore.Report) orchestrator.EditDecision {
			printReport(report)
			if report.AllOK() {
				fmt.Printf("%s looks good, saving.\n", label)
				return orchestrator.EditPromote
			}

			fmt.Print("Edit again? [Y/n] ")
			line, _ := reader.ReadString('\n')
			if strings.EqualFold(strings.TrimSpace(line), "n") {
				fmt.Println("Discarding changes.")
				return orchestrator.EditAbort
			}
			return orchestrator.EditRetry
		})
	if err != nil {
		log.FatalLn(err)
	}
}

func printReport(report configstore.Report) {
	for _, item := range report {
		fmt.Printf("  [%s] %s\n", item.Level, item.Message)
	}
}
