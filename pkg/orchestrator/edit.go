//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package orchestrator

import (
	"context"
	"time"

	"github.com/paradux/paradux/internal/config"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/configstore"
)

// EditDecision is what the caller wants to do after seeing a
// validation Report.
type EditDecision int

const (
	// EditRetry re-invokes the editor on the same temp file.
	EditRetry EditDecision = iota
	// EditPromote promotes the temp file over master. The caller must
	// only choose this when the report is AllOK.
	EditPromote
	// EditAbort discards the temp file, leaving master untouched.
	EditAbort
)

// EditLoop mounts the container, then repeatedly invokes editor over
// store's master/temp file pair at masterFileName, calling decide with
// each validation Report until decide returns EditPromote or EditAbort.
// Cleanup runs unconditionally once the loop ends. If clean is true,
// any temp file left behind by a previous, never-promoted edit session
// is discarded before the loop starts, so the editor opens a fresh copy
// of master rather than resuming the stale draft.
func EditLoop[T any](
	ctx context.Context,
	o *Orchestrator,
	store configstore.Store[T],
	editor configstore.Editor,
	masterFileName string,
	clean bool,
	decide func(configstore.Report) EditDecision,
) error {
	return o.withMount(ctx, func(mountDir string) error {
		masterPath := config.MasterPath(mountDir, masterFileName)
		tempPath, err := config.TempPath(mountDir, masterFileName)
		if err != nil {
			return err
		}

		if clean {
			start := time.Now()
			err := store.AbortTemp(tempPath)
			log.AuditResult(start, log.AuditEditAbort, masterFileName, err)
			if err != nil {
				return err
			}
		}

		log.AuditResult(time.Now(), log.AuditEditStart, masterFileName, nil)

		for {
			report, err := store.EditAndReport(editor, masterPath, tempPath)
			if err != nil {
				return err
			}

			switch decide(report) {
			case EditPromote:
				start := time.Now()
				err := store.PromoteTemp(masterPath, tempPath)
				log.AuditResult(start, log.AuditEditPromote, masterFileName, err)
				return err
			case EditAbort:
				start := time.Now()
				err := store.AbortTemp(tempPath)
				log.AuditResult(start, log.AuditEditAbort, masterFileName, err)
				return err
			case EditRetry:
				continue
			}
		}
	})
}
