//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package configstore

import (
	"encoding/json"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/pkg/entity"
)

// UserStore is the UserStore: user.json / user.tmp.json.
var UserStore = Store[entity.User]{
	Parse: func(data []byte) (entity.User, error) {
		var u entity.User
		if err := json.Unmarshal(data, &u); err != nil {
			return u, paraerrors.ErrJsonMalformed.Wrap(err)
		}
		return u, nil
	},
	Validate: func(u entity.User) Report {
		var report Report
		if u.Name == "" {
			report.Errorf("name is required")
		}
		if u.ContactEmail == nil && u.ContactPhone == nil {
			report.Warnf("no contact-email or contact-phone recorded; stewards won't know how to reach you")
		}
		return report
	},
}
