//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package validation provides runtime precondition checks for Paradux
// components. When a check fails it terminates the program, since the
// conditions it guards represent programming errors that should never
// occur in production.
package validation

import (
	"context"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/internal/log"
)

// CheckContext terminates the program if ctx is nil. fName identifies
// the caller for the resulting log line.
func CheckContext(ctx context.Context, fName string) {
	if ctx == nil {
		failErr := *paraerrors.ErrNilContext.Clone()
		log.Log().Error(fName, "err", failErr.Error())
		log.FatalLn(failErr.Error())
	}
}
