//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package container

import (
	"context"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paradux/paradux/internal/lock"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls [][]string
	dump  string
	fail  map[string]bool
}

func (f *fakeRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)

	if f.fail[name] {
		return nil, &fakeExitError{}
	}
	if name == "cryptsetup" && len(args) > 0 && args[0] == "luksDump" {
		return []byte(f.dump), nil
	}
	return nil, nil
}

type fakeExitError struct{}

func (fakeExitError) Error() string { return "boom" }

type fakePrompter struct{ passphrase []byte }

func (f fakePrompter) Prompt(string) ([]byte, error) { return f.passphrase, nil }

func newTestManager(t *testing.T, runner *fakeRunner) *Manager {
	dir := t.TempDir()
	return &Manager{
		ImagePath: filepath.Join(dir, "configuration.img"),
		MountDir:  filepath.Join(dir, "configuration"),
		Runner:    runner,
		Prompt:    fakePrompter{passphrase: []byte("an everyday passphrase")},
		lock:      lock.New(filepath.Join(dir, "paradux.lock")),
	}
}

func TestSecretToPassphraseStable(t *testing.T) {
	out := secretToPassphrase(big.NewInt(0))
	require.Empty(t, out)

	out = secretToPassphrase(big.NewInt(95))
	require.Equal(t, []byte{32, 33}, out)
}

func TestCreateAndMountRefusesExistingImage(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestManager(t, runner)
	require.NoError(t, createSparseFile(m.ImagePath, 1024))

	err := m.CreateAndMount(context.Background(), big.NewInt(42), 1<<20)
	require.Error(t, err)
}

func TestParseUsedSlots(t *testing.T) {
	dump := strings.Join([]string{
		"LUKS header information",
		"Version:        2",
		"Keyslots:",
		"  0: luks2",
		"  7: luks2",
		"Tokens:",
		"  0: nothing",
	}, "\n")
	slots := parseUsedSlots([]byte(dump))
	require.True(t, slots[0])
	require.True(t, slots[7])
	require.False(t, slots[3])
}

func TestHasSlot(t *testing.T) {
	runner := &fakeRunner{dump: "Keyslots:\n  7: luks2\n"}
	m := newTestManager(t, runner)

	has, err := m.HasSlot(context.Background(), RecoveryKeySlot, m.ImagePath)
	require.NoError(t, err)
	require.True(t, has)

	has, err = m.HasSlot(context.Background(), EverydayKeySlot, m.ImagePath)
	require.NoError(t, err)
	require.False(t, has)
}
