//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package steward

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/entity"
	"github.com/paradux/paradux/pkg/secretsstore"
)

// NewStewardId mints a fresh, opaque StewardId (a random UUID). No
// command calls it: the edit-stewards flow keeps whatever ids the user
// writes as keys in stewards.json.
func NewStewardId() string {
	return uuid.NewString()
}

// BuildAll issues (idempotently) a share for every steward on record,
// saving secretsStore if any new shares were issued, and returns one
// Package per steward.
//
// Stewards are visited in AcceptedOn order (ties broken by id), not Go
// map order: the first export after a batch of stewards is entered
// must bind x = watermark to them in the order the user recorded their
// acceptance, so that a reproducible run always hands the same x to
// the same steward. AcceptedOn's on-disk format is a fixed-width,
// zero-padded, most-significant-first timestamp, so plain string
// comparison already sorts it chronologically.
func BuildAll(
	user entity.User,
	stewards entity.StewardsFile,
	secretsStore *secretsstore.Store,
	secretsPath string,
	metadataLocations []entity.DataLocation,
	version string,
) ([]Package, error) {
	ids := make([]string, 0, len(stewards.Stewards))
	for id := range stewards.Stewards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := stewards.Stewards[ids[i]], stewards.Stewards[ids[j]]
		if si.AcceptedOn != sj.AcceptedOn {
			return si.AcceptedOn < sj.AcceptedOn
		}
		return ids[i] < ids[j]
	})

	packages := make([]Package, 0, len(ids))
	dirty := false

	for _, id := range ids {
		s := stewards.Stewards[id]

		start := time.Now()
		_, alreadyIssued := secretsStore.IssuedShare(id)
		share := secretsStore.IssueShare(id)
		if !alreadyIssued {
			dirty = true
		}
		log.AuditResult(start, log.AuditExportSteward, id, nil)

		packages = append(packages, Package{
			User:              user,
			Steward:           s,
			Share:             share,
			Mersenne:          secretsStore.Mersenne(),
			MinStewards:       secretsStore.MinStewards(),
			MetadataLocations: metadataLocations,
			Version:           version,
		})
	}

	if dirty {
		if err := secretsStore.Save(secretsPath); err != nil {
			return nil, err
		}
	}
	return packages, nil
}
