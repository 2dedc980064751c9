//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package config

import "github.com/paradux/paradux/app"

var Version = app.Version

// restrictedPaths contains system directories that must never be used as
// the Paradux home directory.
var restrictedPaths = []string{
	"/", "/etc", "/sys", "/proc", "/dev", "/bin", "/sbin",
	"/usr", "/lib", "/lib64", "/boot", "/root",
}

const hiddenFolderName = ".paradux"

const (
	imageFileName     = "configuration.img"
	mountFolderName   = "configuration"
	recoverFolderName = "recover"
)

const (
	MetadataFileName = "metadata.json"
	DatasetsFileName = "datasets.json"
	SecretsFileName  = "secrets.json"
	StewardsFileName = "stewards.json"
	UserFileName     = "user.json"

	MetadataTempFileName = "metadata.temp.json"
	DatasetsTempFileName = "datasets.temp.json"
	StewardsTempFileName = "stewards.temp.json"
	// UserFileName's temp variant keeps the original implementation's
	// ".tmp.json" suffix rather than the ".temp.json" the other stores use.
	UserTempFileName = "user.tmp.json"
)
