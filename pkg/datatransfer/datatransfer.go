//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package datatransfer uploads exported metadata to the locations the
// user has configured, dispatching by URL scheme to whichever backend
// claims it.
package datatransfer

import (
	"context"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/pkg/entity"
)

// Backend is one upload mechanism (scp, s3, …).
type Backend interface {
	// Supports reports whether this backend can upload to the given
	// URL scheme.
	Supports(scheme string) bool
	// Upload copies localPath to loc.
	Upload(ctx context.Context, localPath string, loc entity.DataLocation) error
}

// Dispatcher picks the first registered Backend that supports a given
// destination's URL scheme.
type Dispatcher struct {
	backends []Backend
}

// NewDispatcher returns a Dispatcher with Paradux's built-in backends.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{backends: []Backend{ScpBackend{}}}
}

// Upload finds a backend for loc's URL scheme and invokes it. Locations
// with no matching backend are skipped with a warning, not an error:
// a user who configures an unsupported scheme should not block
// publication to the locations that do work.
func (d *Dispatcher) Upload(ctx context.Context, localPath string, loc entity.DataLocation) error {
	if loc.URL == nil {
		return paraerrors.ErrSchemaViolation.WithMsg("metadata location has no URL")
	}

	for _, b := range d.backends {
		if b.Supports(loc.URL.Scheme) {
			return b.Upload(ctx, localPath, loc)
		}
	}

	log.Log().Warn("no datatransfer backend supports this scheme, skipping",
		"scheme", loc.URL.Scheme, "url", loc.URL.String())
	return nil
}
