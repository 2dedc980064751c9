//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package orchestrator

import (
	"context"
	"os"
	"time"

	"github.com/paradux/paradux/internal/config"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/configstore"
	"github.com/paradux/paradux/pkg/datatransfer"
)

// PublishMetadata mounts the container, exports a stripped copy of the
// image to a scoped temp file, uploads it to every configured metadata
// location, and unconditionally deletes the temp export afterward —
// even on upload failure. Zero configured locations is a warning, not
// an error: publish-metadata simply has nothing to do.
func (o *Orchestrator) PublishMetadata(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { log.AuditResult(start, log.AuditPublishMetadata, "", err) }()

	return o.withMount(ctx, func(mountDir string) error {
		locations, err := configstore.MetadataLocations.Load(config.MasterPath(mountDir, config.MetadataFileName))
		if err != nil {
			return err
		}
		if len(locations.Locations) == 0 {
			log.Log().Warn("no metadata locations configured; nothing to publish")
			return nil
		}

		tmp, err := os.CreateTemp("", "paradux-export-")
		if err != nil {
			return err
		}
		tmpPath := tmp.Name()
		tmp.Close()
		os.Remove(tmpPath) // ExportMetadata refuses to overwrite an existing file
		defer os.Remove(tmpPath)

		if err := o.Container.ExportMetadata(ctx, tmpPath); err != nil {
			return err
		}

		dispatcher := datatransfer.NewDispatcher()
		for _, loc := range locations.Locations {
			if err := dispatcher.Upload(ctx, tmpPath, loc); err != nil {
				return err
			}
		}
		return nil
	})
}
