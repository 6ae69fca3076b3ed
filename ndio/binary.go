// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndio

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack"

	"github.com/born-ml/ndarray"
)

// Format constants.
//
// Layout of a binary container:
//
//	[4]byte  magic "NDAR"
//	uint8    format version
//	uint32   payload size (little endian)
//	[]byte   msgpack record
//	[32]byte SHA-256 of everything before it
const (
	MagicBytes     = "NDAR"
	FormatVersion  = 1
	MaxPayloadSize = 1 << 30
	ChecksumSize   = sha256.Size

	headerSize = len(MagicBytes) + 1 + 4
)

// record is the msgpack payload of a binary container.
type record[T ndarray.Element] struct {
	DType string `msgpack:"dtype"`
	Shape []int  `msgpack:"shape"`
	Data  []T    `msgpack:"data"`
}

// WriteBinary encodes a into w.
func WriteBinary[T ndarray.Element](w io.Writer, a *ndarray.Array[T]) error {
	payload, err := msgpack.Marshal(record[T]{
		DType: a.DType().String(),
		Shape: a.Shape(),
		Data:  a.Data(),
	})
	if err != nil {
		return errors.Wrap(err, "could not encode array")
	}
	if len(payload) > MaxPayloadSize {
		return errors.Wrapf(ErrPayloadTooLarge, "%d bytes", len(payload))
	}

	var header bytes.Buffer
	header.WriteString(MagicBytes)
	header.WriteByte(FormatVersion)
	if err := binary.Write(&header, binary.LittleEndian, uint32(len(payload))); err != nil {
		return errors.Wrap(err, "could not write payload size")
	}
	checksum := sum(header.Bytes(), payload)

	for _, part := range [][]byte{header.Bytes(), payload, checksum[:]} {
		if _, err := w.Write(part); err != nil {
			return errors.Wrap(err, "could not write binary container")
		}
	}
	logrus.Debugf("Wrote %s array of shape %v (%d payload bytes)", a.DType(), a.Shape(), len(payload))
	return nil
}

// ReadBinary decodes an array written by WriteBinary. The stored element
// type must be the DataType of T.
func ReadBinary[T ndarray.Element](r io.Reader) (*ndarray.Array[T], error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.Wrap(err, "could not read header")
	}
	if magic := header[:len(MagicBytes)]; string(magic) != MagicBytes {
		return nil, errors.Wrapf(ErrInvalidMagic, "got %q", magic)
	}
	if version := header[len(MagicBytes)]; version != FormatVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", version)
	}
	size := binary.LittleEndian.Uint32(header[len(MagicBytes)+1:])
	if size > MaxPayloadSize {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "%d bytes", size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.Wrap(err, "could not read payload")
	}
	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, errors.Wrap(err, "could not read checksum")
	}
	if sum(header, payload) != stored {
		return nil, ErrChecksumMismatch
	}

	var rec record[T]
	if err := msgpack.Unmarshal(payload, &rec); err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "could not decode payload: %v", err)
	}
	if want := ndarray.DTypeOf[T]().String(); rec.DType != want {
		return nil, errors.Wrapf(ErrTypeMismatch, "file holds %s, want %s", rec.DType, want)
	}
	if len(rec.Shape) == 0 && len(rec.Data) == 0 {
		return &ndarray.Array[T]{}, nil
	}
	a, err := ndarray.FromSlice(rec.Data, ndarray.Shape(rec.Shape))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "%v", err)
	}
	logrus.Debugf("Read %s array of shape %v", rec.DType, a.Shape())
	return a, nil
}

// SaveBinaryFile writes a to the named file, replacing it.
func SaveBinaryFile[T ndarray.Element](path string, a *ndarray.Array[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create binary file")
	}
	if err := WriteBinary(f, a); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not save %s", path)
	}
	return errors.Wrap(f.Close(), "could not close binary file")
}

// LoadBinaryFile reads an array from the named file.
func LoadBinaryFile[T ndarray.Element](path string) (*ndarray.Array[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open binary file")
	}
	defer f.Close()

	a, err := ReadBinary[T](f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}
	return a, nil
}

// sum hashes the header and payload as one stream, so a corrupted size
// field is caught as well as a corrupted record.
func sum(header, payload []byte) [ChecksumSize]byte {
	h := sha256.New()
	h.Write(header)
	h.Write(payload)
	var out [ChecksumSize]byte
	h.Sum(out[:0])
	return out
}
