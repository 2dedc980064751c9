//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package entity

import (
	"encoding/json"
	"net/url"

	paraerrors "github.com/paradux/paradux/internal/errors"
)

// DataLocation is a named, credentialed pointer to where a dataset's
// bytes live, either as a source or as a destination.
type DataLocation struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	URL         *url.URL    `json:"-"`
	Credentials Credentials `json:"-"`
}

// dataLocationWire is the on-disk shape of a DataLocation, used to
// resolve URL and Credentials by hand since both are interfaces or
// require custom parsing.
type dataLocationWire struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	URL         string          `json:"url"`
	Credentials json.RawMessage `json:"credentials,omitempty"`
}

// UnmarshalJSON parses a DataLocation, validating that its credentials
// (if present) are compatible with its URL scheme.
func (d *DataLocation) UnmarshalJSON(data []byte) error {
	var wire dataLocationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return paraerrors.ErrJsonMalformed.Wrap(err)
	}

	u, err := url.Parse(wire.URL)
	if err != nil {
		return paraerrors.ErrSchemaViolation.Wrap(err)
	}

	d.Name = wire.Name
	d.Description = wire.Description
	d.URL = u

	if len(wire.Credentials) == 0 {
		return nil
	}
	creds, err := ParseCredentials(wire.Credentials)
	if err != nil {
		return err
	}
	if !CompatibleWithScheme(creds, u.Scheme) {
		return paraerrors.ErrSchemaViolation.WithMsg(
			"credentials are not compatible with URL scheme " + u.Scheme)
	}
	d.Credentials = creds
	return nil
}

// MarshalJSON renders a DataLocation back to its on-disk shape.
func (d DataLocation) MarshalJSON() ([]byte, error) {
	wire := dataLocationWire{
		Name:        d.Name,
		Description: d.Description,
	}
	if d.URL != nil {
		wire.URL = d.URL.String()
	}
	if d.Credentials != nil {
		raw, err := json.Marshal(d.Credentials)
		if err != nil {
			return nil, err
		}
		wire.Credentials = raw
	}
	return json.Marshal(wire)
}

// Dataset is a named unit of user data to be mirrored from one source
// location to one or more destination locations.
type Dataset struct {
	Name         string         `json:"name"`
	Description  *string        `json:"description,omitempty"`
	Source       DataLocation   `json:"source"`
	Destinations []DataLocation `json:"destinations"`
}

// DatasetsFile is the DatasetsStore master document.
type DatasetsFile struct {
	Datasets []Dataset `json:"datasets"`
}

// MetadataLocationsFile is the MetadataLocationsStore master document:
// the set of locations the stripped configuration metadata is published
// to.
type MetadataLocationsFile struct {
	Locations []DataLocation `json:"locations"`
}
