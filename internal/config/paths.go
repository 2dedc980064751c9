//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package config resolves the on-disk layout Paradux uses: the home
// directory holding the encrypted configuration image, the mount point
// the image is attached to while open, and the file names of the
// documents stored inside it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	homePath    string
	homeOnce    sync.Once
	homeErr     error
	recoverPath string
	recoverOnce sync.Once
)

// EnvHome overrides the default Paradux home directory. Primarily useful
// in tests and CI, where $HOME cannot be relied upon.
const EnvHome = "PARADUX_HOME"

// Home returns $PARADUX_HOME, or $HOME/.paradux when unset, creating it
// at 0700 if it does not already exist. The directory is refused if it
// resolves to exactly one of the restricted system paths; directories
// underneath them are not refused.
func Home() (string, error) {
	homeOnce.Do(func() {
		dir := os.Getenv(EnvHome)
		if dir == "" {
			hd, err := os.UserHomeDir()
			if err != nil {
				homeErr = fmt.Errorf("config: resolve home directory: %w", err)
				return
			}
			dir = filepath.Join(hd, hiddenFolderName)
		}

		abs, err := filepath.Abs(dir)
		if err != nil {
			homeErr = fmt.Errorf("config: resolve %s: %w", dir, err)
			return
		}
		if isRestricted(abs) {
			homeErr = fmt.Errorf("config: %s is a restricted system directory", abs)
			return
		}
		if err := os.MkdirAll(abs, 0700); err != nil {
			homeErr = fmt.Errorf("config: create %s: %w", abs, err)
			return
		}
		homePath = abs
	})
	return homePath, homeErr
}

func isRestricted(abs string) bool {
	for _, p := range restrictedPaths {
		if abs == p {
			return true
		}
	}
	return false
}

// RecoveryFolder returns the "recover" directory under Home, creating it
// at 0700 if necessary. The `recover` command does not use it.
func RecoveryFolder() (string, error) {
	var err error
	recoverOnce.Do(func() {
		var home string
		home, err = Home()
		if err != nil {
			return
		}
		dir := filepath.Join(home, recoverFolderName)
		if mkErr := os.MkdirAll(dir, 0700); mkErr != nil {
			err = fmt.Errorf("config: create %s: %w", dir, mkErr)
			return
		}
		recoverPath = dir
	})
	return recoverPath, err
}

// ImagePath returns the path to the LUKS-encrypted configuration image.
func ImagePath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, imageFileName), nil
}

// MountPoint returns the directory the configuration image is mounted at
// while the container is open.
func MountPoint() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, mountFolderName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("config: create %s: %w", dir, err)
	}
	return dir, nil
}

// MasterPath returns the path of a config document inside the mounted
// container, given its file name constant (e.g. StewardsFileName).
func MasterPath(mountPoint, fileName string) string {
	return filepath.Join(mountPoint, fileName)
}

// tempFileNames maps each master file name to its scratch-edit file name.
// The mapping is irregular (see UserTempFileName) and therefore kept
// explicit rather than derived.
var tempFileNames = map[string]string{
	MetadataFileName: MetadataTempFileName,
	DatasetsFileName: DatasetsTempFileName,
	StewardsFileName: StewardsTempFileName,
	UserFileName:     UserTempFileName,
}

// TempPath returns the scratch path a config document is edited in before
// being validated and promoted, given the mount point and the document's
// master file name constant.
func TempPath(mountPoint, fileName string) (string, error) {
	tempName, ok := tempFileNames[fileName]
	if !ok {
		return "", fmt.Errorf("config: no temp file mapping for %q", fileName)
	}
	return filepath.Join(mountPoint, tempName), nil
}
