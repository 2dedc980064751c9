//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/paradux/paradux/app/paradux/internal/cmd"
)

func main() {
	cmd.Initialize()
	cmd.Execute()
}
