//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package out provides the startup banner printed by the paradux CLI.
package out

import (
	"fmt"

	"github.com/paradux/paradux/internal/env"
)

// PrintBanner prints the CLI's startup banner, which shows its version.
// It is a no-op when PARADUX_BANNER_ENABLED is set to
// a falsy value.
func PrintBanner(appVersion string) {
	if !env.BannerEnabled() {
		return
	}

	fmt.Printf(
		"paradux v%s\n\n",
		appVersion,
	)
}
