// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndio

import (
	"strings"

	"github.com/pkg/errors"
)

// WriteMode selects how SaveTextFile treats an existing file.
type WriteMode int

// Write modes.
const (
	Overwrite WriteMode = iota // Truncate the file
	Append                     // Add lines to the end of the file
)

// String returns the mode name.
func (m WriteMode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case Append:
		return "append"
	default:
		return "unknown"
	}
}

// ParseWriteMode is the inverse of WriteMode.String.
func ParseWriteMode(s string) (WriteMode, error) {
	switch strings.ToLower(s) {
	case "overwrite", "":
		return Overwrite, nil
	case "append":
		return Append, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedMode, "mode %q", s)
	}
}

// TextOptions configures the delimited-text reader and writer.
type TextOptions struct {
	Delimiter rune      // Field separator; ' ' also matches runs of whitespace when reading
	Mode      WriteMode // Used by SaveTextFile only
	Precision int       // Float digits when writing; -1 for the shortest exact form
}

// DefaultTextOptions returns space-delimited, overwriting, shortest-form options.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Delimiter: ' ',
		Mode:      Overwrite,
		Precision: -1,
	}
}
