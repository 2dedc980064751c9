//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package orchestrator

import (
	"context"
	"math/big"
	"time"

	"github.com/paradux/paradux/internal/config"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/internal/validation"
	"github.com/paradux/paradux/pkg/entity"
	"github.com/paradux/paradux/pkg/mersenne"
	"github.com/paradux/paradux/pkg/secretsstore"
)

// defaultRecoverySecretBits is the bit length Init selects the
// recovery secret's Mersenne field by; callers cannot choose another.
const defaultRecoverySecretBits = 521

// Init creates the encrypted container, mounts it, and populates it
// with empty config documents plus a freshly split SecretsRecord for
// minStewards. The empty user document has no name, which UserStore's
// validation reports as an error until the user edits it.
func (o *Orchestrator) Init(ctx context.Context, imageSize int64, minStewards int) (err error) {
	validation.CheckContext(ctx, "Orchestrator.Init")
	start := time.Now()
	defer func() { log.AuditResult(start, log.AuditInit, o.Container.ImagePath, err) }()

	prime, err := selectPrime(defaultRecoverySecretBits)
	if err != nil {
		return err
	}
	secret, err := randomSecret(prime.Value())
	if err != nil {
		return err
	}

	if err := o.Container.CreateAndMount(ctx, secret, imageSize); err != nil {
		return err
	}
	defer o.Container.Cleanup(ctx)

	return o.populateInitial(prime, secret, minStewards)
}

func (o *Orchestrator) populateInitial(prime mersenne.Prime, secret *big.Int, minStewards int) error {
	mountDir := o.MountDir

	if err := writeInitialJSON(config.MasterPath(mountDir, config.MetadataFileName),
		entity.MetadataLocationsFile{}); err != nil {
		return err
	}
	if err := writeInitialJSON(config.MasterPath(mountDir, config.DatasetsFileName),
		entity.DatasetsFile{}); err != nil {
		return err
	}
	if err := writeInitialJSON(config.MasterPath(mountDir, config.StewardsFileName),
		entity.StewardsFile{Stewards: map[string]entity.Steward{}}); err != nil {
		return err
	}
	if err := writeInitialJSON(config.MasterPath(mountDir, config.UserFileName),
		entity.User{}); err != nil {
		return err
	}

	secretsStore, err := secretsstore.New(prime, secret, minStewards)
	if err != nil {
		return err
	}
	return secretsStore.Save(config.MasterPath(mountDir, config.SecretsFileName))
}
