//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package container

import "math/big"

// Stable passphrase alphabet. Changing any of these three constants, the
// loop bound, or the digit order breaks every existing deployment's
// recovery key: do not touch without a versioned migration.
const (
	passphraseMinChar = 32
	passphraseMaxChar = 127
	passphraseBase    = passphraseMaxChar - passphraseMinChar
	passphraseMaxLen  = 512
)

// secretToPassphrase deterministically encodes a recovery secret as a
// cryptsetup passphrase: base-95 little-endian digits over the
// printable-ASCII range [32, 127).
func secretToPassphrase(secret *big.Int) []byte {
	s := new(big.Int).Set(secret)
	base := big.NewInt(passphraseBase)
	zero := big.NewInt(0)
	digit := new(big.Int)

	out := make([]byte, 0, passphraseMaxLen)
	for s.Cmp(zero) != 0 && len(out) < passphraseMaxLen {
		s.DivMod(s, base, digit)
		out = append(out, byte(passphraseMinChar+digit.Int64()))
	}
	return out
}
