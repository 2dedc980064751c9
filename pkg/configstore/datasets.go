//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package configstore

import (
	"encoding/json"

	paraerrors "github.com/paradux/paradux/internal/errors"
	"github.com/paradux/paradux/pkg/entity"
)

// Datasets is the DatasetsStore: datasets.json / datasets.temp.json.
var Datasets = Store[entity.DatasetsFile]{
	Parse: func(data []byte) (entity.DatasetsFile, error) {
		var file entity.DatasetsFile
		if err := json.Unmarshal(data, &file); err != nil {
			return file, paraerrors.ErrJsonMalformed.Wrap(err)
		}
		return file, nil
	},
	Validate: func(file entity.DatasetsFile) Report {
		var report Report
		seen := map[string]bool{}
		for _, d := range file.Datasets {
			if d.Name == "" {
				report.Errorf("dataset has no name")
				continue
			}
			if seen[d.Name] {
				report.Errorf("dataset %q is defined more than once", d.Name)
			}
			seen[d.Name] = true
			if d.Source.URL == nil {
				report.Errorf("dataset %q has no source URL", d.Name)
			}
			if len(d.Destinations) == 0 {
				report.Warnf("dataset %q has no destinations configured", d.Name)
			}
		}
		return report
	},
}

// MetadataLocations is the MetadataLocationsStore: metadata.json /
// metadata.temp.json.
var MetadataLocations = Store[entity.MetadataLocationsFile]{
	Parse: func(data []byte) (entity.MetadataLocationsFile, error) {
		var file entity.MetadataLocationsFile
		if err := json.Unmarshal(data, &file); err != nil {
			return file, paraerrors.ErrJsonMalformed.Wrap(err)
		}
		return file, nil
	},
	Validate: func(file entity.MetadataLocationsFile) Report {
		var report Report
		if len(file.Locations) == 0 {
			report.Warnf("no metadata locations configured; publish-metadata will have nothing to do")
		}
		return report
	},
}
