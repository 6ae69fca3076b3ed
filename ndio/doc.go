// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndio reads and writes arrays.
//
// Two formats are supported:
//   - Delimited text: one array row per line, fields separated by a
//     delimiter character (LoadText, SaveText). Rank 2 at most.
//   - Binary container (.ndar): magic bytes, a version byte, a msgpack
//     record holding dtype, shape and data, and a SHA-256 checksum of
//     the record (WriteBinary, ReadBinary).
//
// Example:
//
//	a, err := ndio.LoadTextFile[float64]("points.txt", ndio.DefaultTextOptions())
//	if err != nil {
//	    return err
//	}
//	return ndio.SaveBinaryFile("points.ndar", a)
package ndio
