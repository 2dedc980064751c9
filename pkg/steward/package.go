//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package steward assembles the bundle ("steward package") handed to
// each person entrusted with a share of the recovery secret.
package steward

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paradux/paradux/pkg/entity"
	"github.com/paradux/paradux/pkg/shamir"
)

// Package is everything a single steward needs: who they're helping,
// their share of the recovery secret, and where to find the published
// metadata when the time comes to use it.
type Package struct {
	User              entity.User
	Steward           entity.Steward
	Share             shamir.Share
	Mersenne          int
	MinStewards       int
	MetadataLocations []entity.DataLocation
	Version           string
}

// AsText renders the package as the fixed plain-text sheet handed or
// mailed to the steward. Wording may change across versions; the
// fields present in it are part of the compatibility surface.
func (p Package) AsText() string {
	contact := p.contactLines()
	locations := p.locationLines()

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", p.Steward.Name)
	fmt.Fprintf(&b, "you have graciously agreed to help\n    %s\n", p.User.Name)
	b.WriteString("recover from personal data disasters that might befall them or their family.\n")
	b.WriteString("This sheet contains all the information you need to assist when needed.\n")
	b.WriteString("Please keep it somewhere safe from disasters (like fires) and\n")
	b.WriteString("unauthorized access (like burglars).\n\n")

	b.WriteString("Should you notice unauthorized access, loss of this sheet, or no longer\n")
	fmt.Fprintf(&b, "want to assist %s, please notify %s immediately", p.User.Name, p.User.Name)
	if contact != "" {
		fmt.Fprintf(&b, " at:\n    %s\n\n", contact)
	} else {
		b.WriteString(".\n\n")
	}

	fmt.Fprintf(&b, "Paradux version:\n    %s\n\n", p.Version)

	fmt.Fprintf(&b, "Your recovery fragment:\n    x = %d, y = %s, m = %d, k = %d\n\n",
		p.Share.X, p.Share.Y.String(), p.Mersenne, p.MinStewards)

	if locations == "" {
		b.WriteString("Locations for recovery data:\n    (none published yet)\n")
	} else {
		fmt.Fprintf(&b, "Locations for recovery data:\n%s\n", locations)
	}

	return b.String()
}

func (p Package) contactLines() string {
	var lines []string
	if p.User.ContactEmail != nil {
		lines = append(lines, *p.User.ContactEmail)
	}
	if p.User.ContactPhone != nil {
		lines = append(lines, *p.User.ContactPhone)
	}
	return strings.Join(lines, ", ")
}

func (p Package) locationLines() string {
	var lines []string
	for _, loc := range p.MetadataLocations {
		if loc.URL != nil {
			lines = append(lines, "    "+loc.URL.String())
		}
	}
	return strings.Join(lines, "\n")
}

// packageWire is the stable on-disk/wire shape for AsJSON: key names
// are part of the compatibility surface even though the Go field names
// are not.
type packageWire struct {
	User              entity.User           `json:"user"`
	Steward           entity.Steward        `json:"steward"`
	StewardShare      entity.ShamirShare    `json:"stewardshare"`
	Mersenne          int                   `json:"mersenne"`
	MinStewards       int                   `json:"min-stewards"`
	MetadataLocations []entity.DataLocation `json:"metadata-locations,omitempty"`
	Version           string                `json:"version"`
}

// AsJSON renders the package with the stable key names steward-facing
// tooling depends on.
func (p Package) AsJSON() ([]byte, error) {
	wire := packageWire{
		User:              p.User,
		Steward:           p.Steward,
		StewardShare:      entity.ShamirShare{X: p.Share.X, Y: p.Share.Y},
		Mersenne:          p.Mersenne,
		MinStewards:       p.MinStewards,
		MetadataLocations: p.MetadataLocations,
		Version:           p.Version,
	}
	return json.MarshalIndent(wire, "", "  ")
}
