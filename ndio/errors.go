// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndio

import "github.com/pkg/errors"

// Common errors.
var (
	ErrMalformedFile      = errors.New("malformed file")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrTypeMismatch       = errors.New("element type mismatch")
	ErrPayloadTooLarge    = errors.New("payload exceeds maximum size")
	ErrUnsupportedMode    = errors.New("unsupported write mode")
)
