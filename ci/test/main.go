//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Command test drives a built paradux binary through init,
// export-steward-packages and publish-metadata end to end, the same
// way the teacher's ci/test exercises its own CLI: spawn the binary,
// expect known prompts, feed them, and expect the success message that
// follows.
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"time"

	expect "github.com/google/goexpect"
)

func generatePassphrase(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-=[]"
	out := make([]byte, length)
	for i := range out {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		out[i] = charset[n.Int64()]
	}
	return string(out)
}

func main() {
	passphrase := generatePassphrase(24)
	timeout := 2 * time.Minute
	paradux := "./paradux"

	// Initialize a fresh configuration.

	child, _, err := expect.Spawn(paradux+" init --min-stewards 2", -1)
	if err != nil {
		log.Fatal(err)
	}
	defer func(child *expect.GExpect) {
		if err := child.Close(); err != nil {
			log.Fatal(err)
		}
	}(child)

	_, _, err = child.Expect(regexp.MustCompile("Set your everyday passphrase"), timeout)
	if err != nil {
		log.Fatal(err)
	}
	if err := child.Send(passphrase + "\n"); err != nil {
		log.Fatal(err)
	}

	_, _, err = child.Expect(regexp.MustCompile("paradux configuration created and mounted."), timeout)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("paradux initialized with everyday passphrase: %s\n", passphrase)

	// With no stewards yet, export-steward-packages should produce
	// nothing and exit cleanly.

	child, _, err = expect.Spawn(paradux+" export-steward-packages", -1)
	if err != nil {
		log.Fatal(err)
	}
	if err := child.Close(); err != nil {
		log.Fatal(err)
	}

	// With no metadata locations configured, publish-metadata warns and
	// exits cleanly rather than failing.

	child, _, err = expect.Spawn(paradux+" publish-metadata", -1)
	if err != nil {
		log.Fatal(err)
	}

	_, _, err = child.Expect(regexp.MustCompile("recovery metadata published."), timeout)
	if err != nil {
		log.Fatal(err)
	}
}
