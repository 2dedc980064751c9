//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package orchestrator

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/internal/validation"
	"github.com/paradux/paradux/pkg/mersenne"
	"github.com/paradux/paradux/pkg/shamir"
)

// recoveryFragment is the shape of one element of the JSON array
// `recover` reads from stdin: the subset of a steward package needed
// to reconstruct the recovery secret. The command has no --json flag;
// JSON is the only input format it accepts.
type recoveryFragment struct {
	Mersenne     int `json:"mersenne"`
	MinStewards  int `json:"min-stewards"`
	StewardShare struct {
		X uint64   `json:"x"`
		Y *big.Int `json:"y"`
	} `json:"stewardshare"`
}

// ParseRecoveryFragments decodes the JSON array of steward-package
// fragments submitted for recovery and validates that every fragment
// agrees on mersenne and min-stewards, and that exactly min-stewards
// fragments were submitted — too few or too many is an error, since
// submitting extra shares risks leaking them.
func ParseRecoveryFragments(data []byte) ([]shamir.Share, int, error) {
	var fragments []recoveryFragment
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, 0, paraerrors.ErrJsonMalformed.Wrap(err)
	}
	if len(fragments) == 0 {
		return nil, 0, paraerrors.ErrInconsistentRecoveryInput.WithMsg("no recovery fragments submitted")
	}

	mersenneIndex := fragments[0].Mersenne
	minStewards := fragments[0].MinStewards
	for _, f := range fragments[1:] {
		if f.Mersenne != mersenneIndex || f.MinStewards != minStewards {
			return nil, 0, paraerrors.ErrInconsistentRecoveryInput
		}
	}
	if len(fragments) != minStewards {
		return nil, 0, paraerrors.ErrInconsistentRecoveryInput.WithMsg(
			"number of submitted shares does not equal min-stewards")
	}

	shares := make([]shamir.Share, len(fragments))
	for i, f := range fragments {
		shares[i] = shamir.Share{X: f.StewardShare.X, Y: f.StewardShare.Y}
	}
	return shares, mersenneIndex, nil
}

// Recover reconstructs the recovery secret from shares over the field
// at mersenneIndex, then unlocks the container directly (not via
// Mount/mount point — the recovery flow only needs to rewrite key
// slots on the image file) and installs a fresh everyday passphrase.
// Cleanup is called unconditionally on every exit, tolerating the fact
// that nothing was ever mounted.
func (o *Orchestrator) Recover(ctx context.Context, shares []shamir.Share, mersenneIndex int) (err error) {
	validation.CheckContext(ctx, "Orchestrator.Recover")
	start := time.Now()
	defer func() { log.AuditResult(start, log.AuditRecover, o.Container.ImagePath, err) }()
	defer o.Container.Cleanup(ctx)

	prime, err := mersenne.FromIndex(mersenneIndex)
	if err != nil {
		return err
	}

	secret, err := shamir.Reconstruct(shares, prime.Value())
	if err != nil {
		return err
	}

	return o.Container.RecoverSetEveryday(ctx, secret)
}
