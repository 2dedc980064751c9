//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package orchestrator

import (
	"context"
	"sort"

	"github.com/paradux/paradux/app"
	"github.com/paradux/paradux/internal/config"
	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/pkg/configstore"
	"github.com/paradux/paradux/pkg/entity"
	"github.com/paradux/paradux/pkg/secretsstore"
	"github.com/paradux/paradux/pkg/steward"
)

// ExportStewardPackages mounts the container, issues (idempotently) a
// share for every steward on record, persists any newly issued shares,
// and returns one Package per steward sorted by name for stable
// output. If stewardID is non-empty, only that steward's package is
// returned.
func (o *Orchestrator) ExportStewardPackages(ctx context.Context, stewardID string) ([]steward.Package, error) {
	var packages []steward.Package

	err := o.withMount(ctx, func(mountDir string) error {
		user, err := configstore.UserStore.Load(config.MasterPath(mountDir, config.UserFileName))
		if err != nil {
			return err
		}
		stewards, err := configstore.Stewards.Load(config.MasterPath(mountDir, config.StewardsFileName))
		if err != nil {
			return err
		}
		metadataLocations, err := configstore.MetadataLocations.Load(config.MasterPath(mountDir, config.MetadataFileName))
		if err != nil {
			return err
		}
		secretsPath := config.MasterPath(mountDir, config.SecretsFileName)
		secretsStore, err := secretsstore.Load(secretsPath)
		if err != nil {
			return err
		}

		if stewardID != "" {
			s, ok := stewards.Stewards[stewardID]
			if !ok {
				return paraerrors.ErrSchemaViolation.WithMsg("unknown steward id: " + stewardID)
			}
			stewards.Stewards = map[string]entity.Steward{stewardID: s}
		}

		packages, err = steward.BuildAll(user, stewards, secretsStore, secretsPath,
			metadataLocations.Locations, app.Version)
		return err
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Steward.Name < packages[j].Steward.Name
	})
	return packages, nil
}
