//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package configstore implements the editable-JSON-document protocol
// every user-facing Paradux config file follows: copy to a scratch
// file, invoke $EDITOR, validate, then promote or abort.
package configstore

import "fmt"

// Level classifies a single ValidationReport entry.
type Level string

const (
	LevelError   Level = "ERROR"
	LevelWarning Level = "WARNING"
	LevelNotice  Level = "NOTICE"
)

// Item is a single validation finding.
type Item struct {
	Level   Level
	Message string
}

// Report is an ordered sequence of validation findings produced by a
// store's Validate function.
type Report []Item

// AllOK reports whether the report contains no ERROR-level items.
func (r Report) AllOK() bool {
	for _, item := range r {
		if item.Level == LevelError {
			return false
		}
	}
	return true
}

// Errorf appends an ERROR item to the report.
func (r *Report) Errorf(format string, args ...any) {
	r.add(LevelError, format, args...)
}

// Warnf appends a WARNING item to the report.
func (r *Report) Warnf(format string, args ...any) {
	r.add(LevelWarning, format, args...)
}

// Noticef appends a NOTICE item to the report.
func (r *Report) Noticef(format string, args ...any) {
	r.add(LevelNotice, format, args...)
}

func (r *Report) add(level Level, format string, args ...any) {
	*r = append(*r, Item{Level: level, Message: fmt.Sprintf(format, args...)})
}
