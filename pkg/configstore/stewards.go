//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package configstore

import (
	"encoding/json"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/pkg/entity"
)

// Stewards is the StewardsStore: stewards.json / stewards.temp.json.
var Stewards = Store[entity.StewardsFile]{
	Parse: func(data []byte) (entity.StewardsFile, error) {
		var file entity.StewardsFile
		if err := json.Unmarshal(data, &file); err != nil {
			return file, paraerrors.ErrJsonMalformed.Wrap(err)
		}
		if file.Stewards == nil {
			file.Stewards = map[string]entity.Steward{}
		}
		return file, nil
	},
	Validate: func(file entity.StewardsFile) Report {
		var report Report
		for id, s := range file.Stewards {
			if s.Name == "" {
				report.Errorf("steward %s: name is required", id)
			}
			if s.AcceptedOn == "" {
				report.Warnf("steward %s (%s): no acceptance timestamp recorded yet", id, s.Name)
			} else if _, err := entity.ParseTimestamp(s.AcceptedOn); err != nil {
				report.Errorf("steward %s (%s): accepted-on is not a valid timestamp", id, s.Name)
			}
		}
		return report
	},
}
