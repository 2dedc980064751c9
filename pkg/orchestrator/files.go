//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package orchestrator

import (
	"encoding/json"
	"os"
)

// writeInitialJSON writes doc to path at mode 0600, the mode every
// config file inside the container is required to carry.
func writeInitialJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
