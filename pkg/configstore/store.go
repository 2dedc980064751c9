//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package configstore

import (
	"os"

	paraerrors "github.com/paradux/paradux/internal/errors"
)

// Store is an editable JSON config document with safe revision
// semantics. T is the parsed document shape (entity.StewardsFile,
// entity.User, entity.DatasetsFile, entity.MetadataLocationsFile, ...).
//
// Every concrete store follows the same state machine:
//
//	clean --edit--> dirty --validate--> {valid, invalid}
//	 ^                                      |
//	 +---- promote (valid) / abort ---------+
type Store[T any] struct {
	Parse    func([]byte) (T, error)
	Validate func(T) Report
}

// Load parses the document at path directly, without going through the
// edit/validate/promote cycle. Used for read-only access (e.g. the
// Orchestrator reading the user, stewards and metadata-locations
// documents before building steward packages).
func (s Store[T]) Load(path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, paraerrors.ErrFileMissing.Wrap(err)
		}
		return zero, err
	}
	doc, err := s.Parse(StripComments(data))
	if err != nil {
		return zero, err
	}
	return doc, nil
}

// EditAndReport runs one edit/validate cycle: if tempPath does not
// exist, master is copied over it at mode 0600. The editor is then
// invoked on tempPath. On a non-zero editor exit, EditorFailed is
// returned. Otherwise the subclass's Validate is run over the edited
// document and its Report returned; the document is never promoted by
// this call.
func (s Store[T]) EditAndReport(editor Editor, masterPath, tempPath string) (Report, error) {
	if _, err := os.Stat(tempPath); os.IsNotExist(err) {
		master, err := os.ReadFile(masterPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err := os.WriteFile(tempPath, master, 0600); err != nil {
			return nil, err
		}
	}

	if err := editor.Invoke(tempPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, err
	}
	doc, err := s.Parse(StripComments(data))
	if err != nil {
		report := Report{}
		report.Errorf("%v", err)
		return report, nil
	}
	return s.Validate(doc), nil
}

// PromoteTemp atomically renames tempPath over masterPath. It is a
// no-op if tempPath does not exist.
func (s Store[T]) PromoteTemp(masterPath, tempPath string) error {
	if _, err := os.Stat(tempPath); os.IsNotExist(err) {
		return nil
	}
	return os.Rename(tempPath, masterPath)
}

// AbortTemp removes tempPath. It is a no-op if it does not exist.
func (s Store[T]) AbortTemp(tempPath string) error {
	err := os.Remove(tempPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
