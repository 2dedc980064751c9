//    \\ Paradux: personal disaster recovery.
//  \\\\\ Copyright 2024-present Paradux contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package errors

//
// General
//

var ErrGeneralFailure = register("gen_general_failure", "general failure")
var ErrNilContext = register("gen_nil_context", "nil context")

//
// Parameter / arithmetic
//

var ErrParameterOutOfRange = register("parameter_out_of_range", "parameter out of range")
var ErrSecretTooLarge = register("secret_too_large", "secret is not smaller than the field prime")
var ErrThresholdTooSmall = register("threshold_too_small", "quorum threshold must be at least 2")
var ErrDuplicateX = register("duplicate_x", "two or more shares share the same x coordinate")
var ErrNotEnoughShares = register("not_enough_shares", "at least two shares are required to reconstruct a secret")
var ErrInconsistentRecoveryInput = register("inconsistent_recovery_input", "recovery fragments disagree on mersenne index or minimum steward count")

//
// State / storage
//

var ErrImageExists = register("image_exists", "configuration image already exists")
var ErrImageMissing = register("image_missing", "configuration image does not exist")
var ErrContainerAlreadyOpen = register("container_already_open", "configuration container is already open")
var ErrFileExists = register("file_exists", "file already exists")
var ErrFileMissing = register("file_missing", "file does not exist")
var ErrJsonMalformed = register("json_malformed", "malformed JSON document")
var ErrSchemaViolation = register("schema_violation", "document does not satisfy its schema")

//
// External
//

var ErrSubprocessFailed = register("subprocess_failed", "external command failed")
var ErrEditorUnavailable = register("editor_unavailable", "no external editor configured (set $EDITOR)")
var ErrEditorFailed = register("editor_failed", "external editor exited with a non-zero status")

//
// Recovery-specific
//

var ErrExportIntegrityFailure = register("export_integrity_failure", "exported metadata failed post-export integrity checks")
