//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package container

import (
	"io"
	"os"

	"github.com/paradux/paradux/internal/log"
)

// createSparseFile creates (or truncates) path to a sparse file of
// exactly size bytes.
func createSparseFile(path string, size int64) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Truncate(size)
}

// writeTempKeyFile writes content to a fresh 0600 temp file and returns
// its path. Callers must deleteTempFile it on every exit path.
func writeTempKeyFile(content []byte) (string, error) {
	f, err := os.CreateTemp("", "paradux-key-")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.Chmod(0600); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if _, err := f.Write(content); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// deleteTempFile unlinks a temp key file created by writeTempKeyFile.
// Failure is logged, not propagated: it is always called from cleanup
// paths that must not themselves fail.
func deleteTempFile(path string) {
	if err := os.Remove(path); err != nil {
		log.Log().Debug("failed to unlink temp key file", "path", path, "error", err)
	}
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
