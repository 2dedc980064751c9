//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package shamir

import "math/big"

// Share is a single point (x, y) on a secret-sharing polynomial. x is
// unique per share issued from a given polynomial; y lies in [0, p).
type Share struct {
	X uint64
	Y *big.Int
}
