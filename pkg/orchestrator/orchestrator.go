//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package orchestrator wires ContainerManager, the config Stores,
// SecretsStore, StewardPackager and the DataTransfer dispatcher into
// Paradux's high-level operations: init, the edit-* commands,
// export-steward-packages, publish-metadata and recover.
package orchestrator

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/paradux/paradux/internal/config"
	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/internal/validation"
	"github.com/paradux/paradux/pkg/container"
	"github.com/paradux/paradux/pkg/mersenne"
)

// Orchestrator holds the paths and collaborators a command needs.
// It is re-created fresh for every CLI invocation.
type Orchestrator struct {
	Home      string
	MountDir  string
	Container *container.Manager
}

// New resolves Paradux's on-disk layout and returns an Orchestrator
// wired to the real container manager.
func New() (*Orchestrator, error) {
	home, err := config.Home()
	if err != nil {
		return nil, err
	}
	imagePath, err := config.ImagePath()
	if err != nil {
		return nil, err
	}
	mountDir, err := config.MountPoint()
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		Home:      home,
		MountDir:  mountDir,
		Container: container.New(imagePath, mountDir, lockPath(home)),
	}, nil
}

func lockPath(home string) string {
	return home + "/paradux.lock"
}

// withMount mounts the container, invokes fn with the mount point, and
// unconditionally calls Cleanup on every exit path — success, error, or
// panic unwinding through fn.
func (o *Orchestrator) withMount(ctx context.Context, fn func(mountDir string) error) error {
	validation.CheckContext(ctx, "Orchestrator.withMount")
	if err := o.Container.Mount(ctx); err != nil {
		return err
	}
	defer o.Container.Cleanup(ctx)
	return fn(o.MountDir)
}

// randomSecret draws a cryptographically strong recovery secret
// uniformly from [0, prime).
func randomSecret(prime *big.Int) (*big.Int, error) {
	secret, err := rand.Int(rand.Reader, prime)
	if err != nil {
		return nil, paraerrors.ErrGeneralFailure.Wrap(err)
	}
	return secret, nil
}

// selectPrime resolves the field for a requested recovery-secret bit
// length, logging the chosen Mersenne index.
func selectPrime(bits int) (mersenne.Prime, error) {
	prime, err := mersenne.SelectByBits(bits)
	if err != nil {
		return mersenne.Prime{}, err
	}
	log.Log().Debug("selected mersenne field", "index", prime.Index(), "bits", prime.Value().BitLen())
	return prime, nil
}
