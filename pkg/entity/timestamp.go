//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package entity holds Paradux's persisted domain types: stewards, the
// user, datasets, data locations and their credentials.
package entity

import "time"

// timestampLayout is the on-disk timestamp format used throughout
// Paradux's JSON documents: YYYYMMDD-HHMMSS, always in UTC.
const timestampLayout = "20060102-150405"

// FormatTimestamp renders t in Paradux's on-disk timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp parses a Paradux on-disk timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
