//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package secretsstore persists and issues shares of the recovery
// secret. Unlike the other stores, SecretsStore is never user-edited.
package secretsstore

import (
	"encoding/json"
	"math/big"
	"os"
	"time"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/entity"
	"github.com/paradux/paradux/pkg/mersenne"
	"github.com/paradux/paradux/pkg/shamir"
)

// Store owns the SecretsRecord and issues shares from it, idempotently.
type Store struct {
	record entity.SecretsRecord
	prime  mersenne.Prime
	gen    *shamir.Generator
}

// New creates a fresh Store for a newly generated recovery secret,
// splitting it into a minStewards-of-n polynomial over the field
// selected by prime.
func New(prime mersenne.Prime, recoverySecret *big.Int, minStewards int) (*Store, error) {
	gen, err := shamir.Split(recoverySecret, minStewards, prime.Value())
	if err != nil {
		return nil, err
	}
	return &Store{
		prime: prime,
		gen:   gen,
		record: entity.SecretsRecord{
			Mersenne:       prime.Index(),
			Polynomial:     gen.Polynomial(),
			WatermarkX:     1,
			RecoverySecret: recoverySecret,
			IssuedShares:   map[string]entity.IssuedShare{},
		},
	}, nil
}

// Load reads and resumes a Store from a previously saved SecretsRecord.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, paraerrors.ErrFileMissing.Wrap(err)
		}
		return nil, err
	}

	var record entity.SecretsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, paraerrors.ErrJsonMalformed.Wrap(err)
	}

	prime, err := mersenne.FromIndex(record.Mersenne)
	if err != nil {
		return nil, err
	}
	if record.IssuedShares == nil {
		record.IssuedShares = map[string]entity.IssuedShare{}
	}

	gen := shamir.Resume(record.RecoverySecret, record.Polynomial, prime.Value())
	return &Store{record: record, prime: prime, gen: gen}, nil
}

// MinStewards returns the quorum threshold this record was created
// with: len(polynomial) + 1.
func (s *Store) MinStewards() int {
	return len(s.record.Polynomial) + 1
}

// Mersenne returns the field's prime index.
func (s *Store) Mersenne() int {
	return s.prime.Index()
}

// IssuedShare looks up a steward's previously issued share, if any.
func (s *Store) IssuedShare(stewardID string) (shamir.Share, bool) {
	issued, ok := s.record.IssuedShares[stewardID]
	if !ok {
		return shamir.Share{}, false
	}
	return shamir.Share{X: issued.Share.X, Y: issued.Share.Y}, true
}

// IssueShare returns stewardID's share, computing and recording a new
// one at the current watermark if none exists yet. Idempotent: calling
// it again for the same stewardID always returns the same share.
//
// The caller MUST call Save before surfacing the returned share
// externally.
func (s *Store) IssueShare(stewardID string) shamir.Share {
	if share, ok := s.IssuedShare(stewardID); ok {
		return share
	}

	start := time.Now()
	share := s.gen.Eval(s.record.WatermarkX)
	s.record.IssuedShares[stewardID] = entity.IssuedShare{
		Share:    entity.ShamirShare{X: share.X, Y: share.Y},
		IssuedOn: entity.FormatTimestamp(start),
	}
	s.record.WatermarkX++
	log.AuditResult(start, log.AuditIssueShare, stewardID, nil)
	return share
}

// Save atomically rewrites the SecretsRecord to path at mode 0600.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s.record, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".write"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
