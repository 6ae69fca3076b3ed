package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/born-ml/ndarray"
	"github.com/born-ml/ndarray/ndio"
)

// BinaryExtension selects the binary container for input and output files.
const BinaryExtension = ".ndar"

var reducers = map[string]struct {
	init float64
	op   func(acc, x float64) float64
}{
	"sum":  {0, ndarray.Plus[float64]},
	"prod": {1, ndarray.Times[float64]},
	"min":  {0, ndarray.Lesser[float64]},
	"max":  {0, ndarray.Greater[float64]},
}

// Run executes the parsed command, writing results to w. Arguments without
// a command come from --help or the help command, which already printed.
func Run(w io.Writer, appVersion string, args *Arguments) error {
	switch {
	case args.Version:
		_, err := fmt.Fprintln(w, "ndarray version", appVersion)
		return err
	case args.Info != nil:
		return info(w, args)
	case args.Show != nil:
		return show(w, args)
	case args.Transpose != nil:
		return transpose(w, args)
	case args.Sort != nil:
		return sortArray(w, args)
	case args.Reduce != nil:
		return reduce(w, args)
	case args.Convert != nil:
		return convert(args)
	case args.Compare != nil:
		return compare(w, args)
	}
	return nil
}

func load(path string, cfg Config) (*ndarray.Array[float64], error) {
	logrus.Debugf("Loading %s", path)
	if isBinary(path) {
		return ndio.LoadBinaryFile[float64](path)
	}
	return ndio.LoadTextFile[float64](path, cfg.TextOptions(ndio.Overwrite))
}

// emit saves a to the output file, or prints it when no output is set.
func emit(w io.Writer, a *ndarray.Array[float64], args *Arguments) error {
	if args.Output == "" {
		return render(w, a, args.Settings)
	}
	return save(args.Output, a, args)
}

func save(path string, a *ndarray.Array[float64], args *Arguments) error {
	logrus.Debugf("Writing %s", path)
	if isBinary(path) {
		if args.Append {
			return errors.Wrap(ndio.ErrUnsupportedMode, "binary files cannot be appended")
		}
		return ndio.SaveBinaryFile(path, a)
	}
	mode := ndio.Overwrite
	if args.Append {
		mode = ndio.Append
	}
	return ndio.SaveTextFile(path, a, args.Settings.TextOptions(mode))
}

func render(w io.Writer, a *ndarray.Array[float64], cfg Config) error {
	if !cfg.Table || a.IsEmpty() || a.Rank() > 2 {
		_, err := fmt.Fprintln(w, a.String())
		return err
	}
	cols := ndio.Columns(a.Shape())
	rows := a.Len() / cols
	table := tablewriter.NewWriter(w)
	header := make([]string, cols)
	for j := range header {
		header[j] = strconv.Itoa(j)
	}
	table.SetHeader(header)
	table.SetBorder(false)
	data := a.Data()
	for i := 0; i < rows; i++ {
		row := make([]string, cols)
		for j := range row {
			row[j] = strconv.FormatFloat(data[i*cols+j], 'g', cfg.Precision, 64)
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func info(w io.Writer, args *Arguments) error {
	a, err := load(args.Info.Path, args.Settings)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "shape: %s\n", a.Shape())
	fmt.Fprintf(w, "rank: %d\n", a.Rank())
	fmt.Fprintf(w, "len: %d\n", a.Len())
	if a.IsEmpty() {
		return nil
	}
	lo, _ := ndarray.Min(a)
	hi, _ := ndarray.Max(a)
	fmt.Fprintf(w, "min: %g\n", lo)
	fmt.Fprintf(w, "max: %g\n", hi)
	_, err = fmt.Fprintf(w, "sum: %g\n", ndarray.Sum(a))
	return err
}

func show(w io.Writer, args *Arguments) error {
	a, err := load(args.Show.Path, args.Settings)
	if err != nil {
		return err
	}
	return render(w, a, args.Settings)
}

func transpose(w io.Writer, args *Arguments) error {
	a, err := load(args.Transpose.Path, args.Settings)
	if err != nil {
		return err
	}
	if err := a.Transpose(args.Transpose.Perm...); err != nil {
		return err
	}
	return emit(w, a, args)
}

func sortArray(w io.Writer, args *Arguments) error {
	a, err := load(args.Sort.Path, args.Settings)
	if err != nil {
		return err
	}
	if args.Sort.Flat {
		ndarray.SortFlat(a)
	} else if err := ndarray.Sort(a, args.Sort.Axis); err != nil {
		return err
	}
	return emit(w, a, args)
}

func reduce(w io.Writer, args *Arguments) error {
	a, err := load(args.Reduce.Path, args.Settings)
	if err != nil {
		return err
	}
	r := reducers[args.Reduce.Op]
	seed := r.init
	if args.Reduce.Op == "min" || args.Reduce.Op == "max" {
		// Seed with an element so the fold ignores the neutral value.
		if seed, err = a.AtFlat(0); err != nil {
			return err
		}
	}
	out, err := a.ReduceAlongAxis(args.Reduce.Axis, seed, r.op)
	if err != nil {
		return err
	}
	return emit(w, out, args)
}

func convert(args *Arguments) error {
	a, err := load(args.Convert.Path, args.Settings)
	if err != nil {
		return err
	}
	target := args.Output
	if target == "" {
		ext := ".txt"
		if args.Convert.To == "bin" {
			ext = BinaryExtension
		}
		target = strings.TrimSuffix(args.Convert.Path, filepath.Ext(args.Convert.Path)) + ext
	}
	if (args.Convert.To == "bin") != isBinary(target) {
		return errors.Wrapf(InvalidArgument, "output %s does not match format %s", target, args.Convert.To)
	}
	return save(target, a, args)
}

func compare(w io.Writer, args *Arguments) error {
	left, err := load(args.Compare.Left, args.Settings)
	if err != nil {
		return err
	}
	right, err := load(args.Compare.Right, args.Settings)
	if err != nil {
		return err
	}
	if !ndarray.EqualWithin(left, right, args.Settings.Tolerance) {
		return errors.Errorf("%s and %s differ (tolerance %g)", args.Compare.Left, args.Compare.Right, args.Settings.Tolerance)
	}
	_, err = fmt.Fprintln(w, "equal")
	return err
}

func isBinary(path string) bool {
	return strings.EqualFold(filepath.Ext(path), BinaryExtension)
}
