// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndio

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/born-ml/ndarray"
)

// LoadText reads delimited rows into a (rows, cols) array. Blank lines are
// skipped. Every row must have as many fields as the first one.
func LoadText[T ndarray.Element](r io.Reader, opts TextOptions) (*ndarray.Array[T], error) {
	rows, err := readRows(r, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &ndarray.Array[T]{}, nil
	}

	cols := len(rows[0].fields)
	data := make([]T, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row.fields) != cols {
			return nil, errors.Wrapf(ErrMalformedFile, "line %d has %d fields, first row has %d", row.line, len(row.fields), cols)
		}
		for _, field := range row.fields {
			v, err := parseValue[T](strings.TrimSpace(field))
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedFile, "line %d: field %q: %v", row.line, field, err)
			}
			data = append(data, v)
		}
	}
	logrus.Debugf("Read %d rows with %d columns", len(rows), cols)
	return ndarray.FromSlice(data, ndarray.Shape{len(rows), cols})
}

// LoadTextFile is LoadText on the named file.
func LoadTextFile[T ndarray.Element](path string, opts TextOptions) (*ndarray.Array[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open text file")
	}
	defer f.Close()

	a, err := LoadText[T](f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", path)
	}
	return a, nil
}

type textRow struct {
	line   int
	fields []string
}

// readRows splits the input into non-blank rows of fields.
func readRows(r io.Reader, delimiter rune) ([]textRow, error) {
	var rows []textRow
	if delimiter == ' ' {
		scanner := bufio.NewScanner(r)
		for line := 1; scanner.Scan(); line++ {
			if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
				rows = append(rows, textRow{line: line, fields: fields})
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "unexpected error while reading text")
		}
		return rows, nil
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedFile, "%v", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, textRow{line: line, fields: record})
	}
}

// SaveText writes a rank <= 2 array, one row per line as laid out by
// Columns, fields joined by opts.Delimiter.
func SaveText[T ndarray.Element](w io.Writer, a *ndarray.Array[T], opts TextOptions) error {
	if err := checkWritable(a); err != nil {
		return err
	}
	if a.IsEmpty() {
		return nil
	}

	cols := Columns(a.Shape())
	data := a.Data()

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter
	record := make([]string, cols)
	for start := 0; start < len(data); start += cols {
		for i, v := range data[start : start+cols] {
			record[i] = formatValue(v, opts.Precision)
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "could not write row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "could not flush rows")
	}
	logrus.Debugf("Wrote %d rows with %d columns", len(data)/cols, cols)
	return nil
}

// SaveTextFile is SaveText on the named file, truncating or appending
// according to opts.Mode. Arguments are validated before the file is touched.
func SaveTextFile[T ndarray.Element](path string, a *ndarray.Array[T], opts TextOptions) error {
	if err := checkWritable(a); err != nil {
		return err
	}
	flags := os.O_CREATE | os.O_WRONLY
	switch opts.Mode {
	case Overwrite:
		flags |= os.O_TRUNC
	case Append:
		flags |= os.O_APPEND
	default:
		return errors.Wrapf(ErrUnsupportedMode, "mode %d", int(opts.Mode))
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.Wrap(err, "could not open text file")
	}
	if err := SaveText(f, a, opts); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not save %s", path)
	}
	return errors.Wrap(f.Close(), "could not close text file")
}

// Columns returns the number of fields per line SaveText writes for shape.
// A rank-2 shape gives its second effective dimension wherever unit entries
// sit. A rank-1 shape is a column, one value per line, when its last stored
// entry is 1 and it holds more than one element; otherwise it is one row.
func Columns(shape ndarray.Shape) int {
	dims := shape.Dims()
	switch {
	case shape.Rank() == 2:
		return dims[1]
	case len(shape) > 1 && shape[len(shape)-1] == 1 && shape.NumElements() > 1:
		return 1
	default:
		return shape.NumElements()
	}
}

func checkWritable[T ndarray.Element](a *ndarray.Array[T]) error {
	if a.Rank() > 2 {
		return errors.Wrapf(ndarray.ErrDimensionMismatch, "text files hold rank <= 2, got shape %v", a.Shape())
	}
	return nil
}
