// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndio

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray"
)

// parseValue parses one text field as T.
func parseValue[T ndarray.Element](s string) (T, error) {
	var (
		zero T
		v    any
		err  error
	)
	switch ndarray.DTypeOf[T]() {
	case ndarray.Float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case ndarray.Float64:
		v, err = strconv.ParseFloat(s, 64)
	case ndarray.Int:
		var i int64
		i, err = strconv.ParseInt(s, 10, strconv.IntSize)
		v = int(i)
	case ndarray.Int8:
		var i int64
		i, err = strconv.ParseInt(s, 10, 8)
		v = int8(i)
	case ndarray.Int16:
		var i int64
		i, err = strconv.ParseInt(s, 10, 16)
		v = int16(i)
	case ndarray.Int32:
		var i int64
		i, err = strconv.ParseInt(s, 10, 32)
		v = int32(i)
	case ndarray.Int64:
		v, err = strconv.ParseInt(s, 10, 64)
	case ndarray.Uint:
		var u uint64
		u, err = strconv.ParseUint(s, 10, strconv.IntSize)
		v = uint(u)
	case ndarray.Uint8:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 8)
		v = uint8(u)
	case ndarray.Uint16:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 16)
		v = uint16(u)
	case ndarray.Uint32:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 32)
		v = uint32(u)
	case ndarray.Uint64:
		v, err = strconv.ParseUint(s, 10, 64)
	case ndarray.Bool:
		v, err = strconv.ParseBool(s)
	default:
		return zero, errors.Wrapf(ErrTypeMismatch, "cannot parse into %T", zero)
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// formatValue renders v; floats use the 'g' format with precision digits.
func formatValue[T ndarray.Element](v T, precision int) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', precision, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', precision, 64)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(v)
	}
}
