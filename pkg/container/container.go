//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package container owns the lifecycle of the LUKS-encrypted
// configuration image: creation, opening, mounting, export and
// recovery. Everything else in Paradux that touches the container's
// contents does so through the mount point this package hands back.
package container

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"time"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/internal/lock"
	"github.com/paradux/paradux/internal/log"
	"github.com/paradux/paradux/internal/retry"
)

const (
	// EverydayKeySlot holds the user-chosen, memorable passphrase.
	EverydayKeySlot = 0
	// RecoveryKeySlot holds the passphrase derived from the Shamir
	// recovery secret. Never removed: metadata exports keep it and lose
	// only the everyday slot.
	RecoveryKeySlot = 7

	cryptDeviceName = "paradux"
)

var keyslotLine = regexp.MustCompile(`^\s*(\d+):`)

// Manager owns one LUKS image and its mount point.
type Manager struct {
	ImagePath string
	MountDir  string
	LockPath  string

	Runner  CommandRunner
	Prompt  PassphrasePrompter
	Retrier retry.Retrier

	lock *lock.FileLock
}

// New returns a Manager for the image and mount point at the given
// paths, using the real cryptsetup/mount/mkfs binaries and a terminal
// passphrase prompt.
func New(imagePath, mountDir, lockPath string) *Manager {
	return &Manager{
		ImagePath: imagePath,
		MountDir:  mountDir,
		LockPath:  lockPath,
		Runner:    ExecRunner{},
		Prompt:    TerminalPrompter{},
		Retrier:   retry.NewExponentialRetrier(),
		lock:      lock.New(lockPath),
	}
}

func (m *Manager) devicePath() string {
	return filepath.Join("/dev/mapper", cryptDeviceName)
}

// CheckCanCreate fails ImageExists if the image already exists.
func (m *Manager) CheckCanCreate() error {
	if m.imageExists() {
		return paraerrors.ErrImageExists.WithMsg(m.ImagePath)
	}
	return nil
}

func (m *Manager) imageExists() bool {
	_, err := os.Stat(m.ImagePath)
	return err == nil
}

// CreateAndMount allocates a sparse image of imageSize bytes, formats it
// installing recoverySecret at RecoveryKeySlot, prompts the operator for
// an everyday passphrase and installs it at EverydayKeySlot, opens the
// mapped device, formats and mounts it, then sets the mount point's
// ownership and mode to 0700.
func (m *Manager) CreateAndMount(ctx context.Context, recoverySecret *big.Int, imageSize int64) error {
	if err := m.CheckCanCreate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.ImagePath), 0700); err != nil {
		return err
	}
	if err := createSparseFile(m.ImagePath, imageSize); err != nil {
		return err
	}

	recoveryKeyFile, err := writeTempKeyFile(secretToPassphrase(recoverySecret))
	if err != nil {
		return err
	}
	defer deleteTempFile(recoveryKeyFile)

	if _, err := m.Runner.Run(ctx, nil, "cryptsetup", "luksFormat",
		"--batch-mode",
		fmt.Sprintf("--key-slot=%d", RecoveryKeySlot),
		m.ImagePath, recoveryKeyFile); err != nil {
		return err
	}

	everyday, err := m.Prompt.Prompt("Set your everyday passphrase for paradux.\n" +
		"Make sure it is long, hard to guess, and do not write it down anywhere.\n" +
		"If you lose it, paradux lets you recover with the help of your stewards.\n")
	if err != nil {
		return err
	}
	if _, err := m.Runner.Run(ctx, everyday, "cryptsetup", "luksAddKey",
		"--batch-mode",
		fmt.Sprintf("--key-slot=%d", EverydayKeySlot),
		"--key-file="+recoveryKeyFile,
		m.ImagePath, "-"); err != nil {
		return err
	}

	if _, err := m.Runner.Run(ctx, nil, "cryptsetup", "open", m.ImagePath, cryptDeviceName); err != nil {
		return err
	}
	if _, err := m.Runner.Run(ctx, nil, "mkfs.ext4", "-q", m.devicePath()); err != nil {
		return err
	}
	return m.mountAndSecure(ctx)
}

// Mount opens the container (prompting for the everyday passphrase, via
// cryptsetup reading the terminal directly) and mounts it. Fails
// ImageMissing if the image does not exist.
func (m *Manager) Mount(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { log.AuditResult(start, log.AuditContainerOpen, m.ImagePath, err) }()

	if !m.imageExists() {
		return paraerrors.ErrImageMissing.WithMsg(m.ImagePath)
	}
	if m.lock.IsLocked() {
		return paraerrors.ErrContainerAlreadyOpen.WithMsg(m.ImagePath)
	}

	if _, err := m.Runner.Run(ctx, nil, "cryptsetup", "open", m.ImagePath, cryptDeviceName); err != nil {
		return err
	}
	if err := m.mountAndSecure(ctx); err != nil {
		m.Cleanup(ctx)
		return err
	}
	return nil
}

func (m *Manager) mountAndSecure(ctx context.Context) error {
	if err := m.lock.Acquire(); err != nil {
		return paraerrors.ErrContainerAlreadyOpen.Wrap(err)
	}
	if err := os.MkdirAll(m.MountDir, 0700); err != nil {
		return err
	}
	// The mapped device node can take a moment to appear after
	// cryptsetup open returns, so retry the first mount attempt.
	mount := func() error {
		_, err := m.Runner.Run(ctx, nil, "mount", m.devicePath(), m.MountDir)
		return err
	}
	var err error
	if m.Retrier != nil {
		err = m.Retrier.RetryWithBackoff(ctx, mount)
	} else {
		err = mount()
	}
	if err != nil {
		return err
	}
	if _, err := m.Runner.Run(ctx, nil, "chown", fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid()), m.MountDir); err != nil {
		return err
	}
	if _, err := m.Runner.Run(ctx, nil, "chmod", "0700", m.MountDir); err != nil {
		return err
	}
	return nil
}

// Cleanup unmounts if mounted and closes the mapped device if open. It
// is tolerant of every failure: cleanup is called from all error paths
// and must never itself return an error that masks the original one.
func (m *Manager) Cleanup(ctx context.Context) {
	start := time.Now()
	defer func() { log.AuditResult(start, log.AuditContainerClose, m.ImagePath, nil) }()

	if _, err := m.Runner.Run(ctx, nil, "umount", m.MountDir); err != nil {
		log.Log().Debug("cleanup: umount failed, continuing", "error", err)
	}
	if _, err := m.Runner.Run(ctx, nil, "cryptsetup", "close", cryptDeviceName); err != nil {
		log.Log().Debug("cleanup: cryptsetup close failed, continuing", "error", err)
	}
	if err := m.lock.Release(); err != nil {
		log.Log().Debug("cleanup: lock release failed, continuing", "error", err)
	}
}

// HasSlot reports whether slot is populated on the image at imagePath,
// parsed from cryptsetup's textual header dump.
func (m *Manager) HasSlot(ctx context.Context, slot int, imagePath string) (bool, error) {
	out, err := m.Runner.Run(ctx, nil, "cryptsetup", "luksDump", imagePath)
	if err != nil {
		return false, err
	}
	return parseUsedSlots(out)[slot], nil
}

func parseUsedSlots(dump []byte) map[int]bool {
	ret := map[int]bool{}
	inKeyslots := false
	for _, line := range splitLines(dump) {
		if len(line) > 0 && line[0] != ' ' && line[0] != '\t' {
			inKeyslots = len(line) >= len("Keyslots:") && line[:len("Keyslots:")] == "Keyslots:"
			continue
		}
		if !inKeyslots {
			continue
		}
		m := keyslotLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		ret[n] = true
	}
	return ret
}

func splitLines(b []byte) []string {
	var lines []string
	start := 0
	for i, c := range b {
		if c == '\n' {
			lines = append(lines, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		lines = append(lines, string(b[start:]))
	}
	return lines
}

// ExportMetadata copies the image to destPath and strips the everyday
// key slot from the copy, then verifies the copy still has the recovery
// slot populated and no longer has the everyday slot: both checks are
// fatal on failure, since a mistake here would ship the everyday
// passphrase off-site.
func (m *Manager) ExportMetadata(ctx context.Context, destPath string) error {
	if !m.imageExists() {
		return paraerrors.ErrImageMissing.WithMsg(m.ImagePath)
	}
	if _, err := os.Stat(destPath); err == nil {
		return paraerrors.ErrFileExists.WithMsg(destPath)
	}

	if err := copyFile(m.ImagePath, destPath, 0600); err != nil {
		return err
	}

	if _, err := m.Runner.Run(ctx, nil, "cryptsetup", "luksKillSlot",
		"--batch-mode", destPath, fmt.Sprintf("%d", EverydayKeySlot)); err != nil {
		return paraerrors.ErrExportIntegrityFailure.Wrap(err)
	}

	hasEveryday, err := m.HasSlot(ctx, EverydayKeySlot, destPath)
	if err != nil {
		return err
	}
	if hasEveryday {
		return paraerrors.ErrExportIntegrityFailure.WithMsg("exported image still has the everyday passphrase set")
	}
	hasRecovery, err := m.HasSlot(ctx, RecoveryKeySlot, destPath)
	if err != nil {
		return err
	}
	if !hasRecovery {
		return paraerrors.ErrExportIntegrityFailure.WithMsg("exported image lost its recovery secret")
	}

	log.Log().Info("exported metadata", "dest", destPath)
	return nil
}

// RecoverSetEveryday unlocks the image with recoverySecret and installs
// a fresh everyday passphrase. The image must already have the recovery
// slot populated.
func (m *Manager) RecoverSetEveryday(ctx context.Context, recoverySecret *big.Int) error {
	if !m.imageExists() {
		return paraerrors.ErrImageMissing.WithMsg(m.ImagePath)
	}
	hasRecovery, err := m.HasSlot(ctx, RecoveryKeySlot, m.ImagePath)
	if err != nil {
		return err
	}
	if !hasRecovery {
		return paraerrors.ErrImageMissing.WithMsg("image has no recovery secret set")
	}

	// Ignore failure: the everyday slot may already be empty on an
	// export intended for offsite storage.
	_, _ = m.Runner.Run(ctx, nil, "cryptsetup", "luksKillSlot",
		"--batch-mode", m.ImagePath, fmt.Sprintf("%d", EverydayKeySlot))

	recoveryKeyFile, err := writeTempKeyFile(secretToPassphrase(recoverySecret))
	if err != nil {
		return err
	}
	defer deleteTempFile(recoveryKeyFile)

	everyday, err := m.Prompt.Prompt("Set your everyday passphrase for the recovered paradux configuration.\n" +
		"Make sure it is long, hard to guess, and do not write it down anywhere.\n")
	if err != nil {
		return err
	}
	if _, err := m.Runner.Run(ctx, everyday, "cryptsetup", "luksAddKey",
		"--batch-mode",
		fmt.Sprintf("--key-slot=%d", EverydayKeySlot),
		"--key-file="+recoveryKeyFile,
		m.ImagePath, "-"); err != nil {
		return err
	}
	return nil
}
