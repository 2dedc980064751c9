//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package configstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripCommentsPreservesStringHashes(t *testing.T) {
	in := []byte(`{
		# a comment
		"name": "a # b", # trailing
		"value": 1
	}`)
	out := StripComments(in)
	require.Contains(t, string(out), `"name": "a # b"`)
	require.NotContains(t, string(out), "a comment")
	require.NotContains(t, string(out), "trailing")
}

type fakeEditor struct {
	write []byte
	err   error
}

func (f fakeEditor) Invoke(path string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(path, f.write, 0600)
}

func TestEditAndReportPromoteCycle(t *testing.T) {
	dir := t.TempDir()
	masterPath := filepath.Join(dir, "user.json")
	tempPath := filepath.Join(dir, "user.tmp.json")

	require.NoError(t, os.WriteFile(masterPath, []byte(`{"name":"old"}`), 0600))

	editor := fakeEditor{write: []byte(`{"name":"new"}`)}
	report, err := UserStore.EditAndReport(editor, masterPath, tempPath)
	require.NoError(t, err)
	require.True(t, report.AllOK())

	require.NoError(t, UserStore.PromoteTemp(masterPath, tempPath))
	_, err = os.Stat(tempPath)
	require.True(t, os.IsNotExist(err))

	doc, err := UserStore.Load(masterPath)
	require.NoError(t, err)
	require.Equal(t, "new", doc.Name)
}

func TestEditAndReportAbort(t *testing.T) {
	dir := t.TempDir()
	masterPath := filepath.Join(dir, "user.json")
	tempPath := filepath.Join(dir, "user.tmp.json")
	require.NoError(t, os.WriteFile(masterPath, []byte(`{"name":"old"}`), 0600))

	editor := fakeEditor{write: []byte(`{"name":""}`)}
	report, err := UserStore.EditAndReport(editor, masterPath, tempPath)
	require.NoError(t, err)
	require.False(t, report.AllOK())

	require.NoError(t, UserStore.AbortTemp(tempPath))
	_, err = os.Stat(tempPath)
	require.True(t, os.IsNotExist(err))

	doc, err := UserStore.Load(masterPath)
	require.NoError(t, err)
	require.Equal(t, "old", doc.Name)
}
