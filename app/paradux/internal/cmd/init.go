//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/orchestrator"
)

const defaultImageSize = 64 << 20 // 64 MiB
const defaultMinStewards = 3

func newInitCommand() *cobra.Command {
	var imageSizeFlag string
	var minStewards int

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create and mount a new paradux configuration",
		Run: func(cmd *cobra.Command, args []string) {
			imageSize, err := parseImageSize(imageSizeFlag)
			if err != nil {
				log.FatalLn(err)
			}
			if minStewards < 2 {
				log.FatalLn("--min-stewards must be at least 2")
			}

			o, err := orchestrator.New()
			if err != nil {
				log.FatalLn(err)
			}
			if err := o.Init(context.Background(), imageSize, minStewards); err != nil {
				log.FatalLn(err)
			}

			fmt.Println("paradux configuration created and mounted.")
			fmt.Println("Run `paradux edit-stewards` to add recovery stewards.")
		},
	}

	initCmd.Flags().StringVar(&imageSizeFlag, "image-size", "64M",
		"size of the configuration image, e.g. 64M, 1G")
	initCmd.Flags().IntVar(&minStewards, "min-stewards", defaultMinStewards,
		"number of stewards required to recover")

	return initCmd
}

// parseImageSize parses a human size like "64M" or "1G" into bytes. A
// bare integer is interpreted as bytes.
func parseImageSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultImageSize, nil
	}

	multiplier := int64(1)
	switch suffix := s[len(s)-1]; suffix {
	case 'k', 'K':
		multiplier = 1 << 10
		s = s[:len(s)-1]
	case 'm', 'M':
		multiplier = 1 << 20
		s = s[:len(s)-1]
	case 'g', 'G':
		multiplier = 1 << 30
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid image size %q: %w", s, err)
	}
	return n * multiplier, nil
}
