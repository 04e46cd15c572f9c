// SPDX-License-Identifier: MIT

package nanoschema

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTable indicates a schema table that cannot be parsed or
	// violates the table rules (unknown keys, empty branch names, no fields).
	ErrInvalidTable = errors.New("nanoschema: invalid table")

	// ErrMissingBranch indicates the record does not carry the resolved branch.
	ErrMissingBranch = errors.New("nanoschema: missing branch")

	// ErrLengthMismatch indicates paired per-object branches of different length.
	ErrLengthMismatch = errors.New("nanoschema: branch length mismatch")
)

// nanoschemaErrorf wraps err with the operation name.
func nanoschemaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidTablef returns an ErrInvalidTable with detail.
func invalidTablef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTable, fmt.Sprintf(format, args...))
}

// missingBranch returns an ErrMissingBranch naming branch.
func missingBranch(branch string) error {
	return fmt.Errorf("%w %q", ErrMissingBranch, branch)
}
