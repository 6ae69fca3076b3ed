package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var (
	MissingCommand  = errors.New("missing command")
	MissingArgument = errors.New("missing argument")
	InvalidArgument = errors.New("invalid argument")
)

// Arguments are the parsed command line. Exactly one command field is set.
type Arguments struct {
	Settings Config
	Output   string // Output file, stdout when empty
	Append   bool
	Verbose  bool

	Version   bool
	Info      *InfoArguments
	Show      *ShowArguments
	Transpose *TransposeArguments
	Sort      *SortArguments
	Reduce    *ReduceArguments
	Convert   *ConvertArguments
	Compare   *CompareArguments
}

type InfoArguments struct {
	Path string
}

type ShowArguments struct {
	Path string
}

type TransposeArguments struct {
	Path string
	Perm []int // empty reverses the axes
}

type SortArguments struct {
	Path string
	Axis int
	Flat bool
}

type ReduceArguments struct {
	Path string
	Axis int
	Op   string
}

type ConvertArguments struct {
	Path string
	To   string
}

type CompareArguments struct {
	Left, Right string
}

// ParseArguments parses argv. Usage errors are printed by the cli package.
func ParseArguments(argv []string, appVersion string) (*Arguments, error) {
	args := Arguments{Settings: DefaultConfig()}
	app := cli.NewApp()
	app.Name = "ndarray"
	app.Usage = "Inspect and transform N-dimensional array files"
	app.Version = appVersion
	app.HideVersion = true // -v is verbose; see the version command
	app.UseShortOptionHandling = true

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config,c", Usage: "YAML settings file"},
		cli.StringFlag{Name: "delimiter,d", Value: " ", Usage: "Field delimiter of text files"},
		cli.IntFlag{Name: "precision,p", Value: -1, Usage: "Float digits when writing text (-1: shortest)"},
		cli.StringFlag{Name: "output,o", Usage: "Output file (.ndar for binary)"},
		cli.BoolFlag{Name: "append", Usage: "Append to a text output file"},
		cli.BoolFlag{Name: "table,t", Usage: "Render rank-2 arrays as a table"},
		cli.BoolFlag{Name: "verbose,v", Usage: "Debug logging"},
	}

	app.Commands = []cli.Command{
		{
			Name:  "version",
			Usage: "Show version",
			Action: func(c *cli.Context) error {
				args.Version = true
				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Show shape, rank and value range",
			ArgsUsage: "<file>",
			Action: func(c *cli.Context) error {
				path, err := pathArgument(c)
				if err != nil {
					return err
				}
				args.Info = &InfoArguments{Path: path}
				return nil
			},
		},
		{
			Name:      "show",
			Usage:     "Print the array",
			ArgsUsage: "<file>",
			Action: func(c *cli.Context) error {
				path, err := pathArgument(c)
				if err != nil {
					return err
				}
				args.Show = &ShowArguments{Path: path}
				return nil
			},
		},
		{
			Name:      "transpose",
			Usage:     "Permute the axes",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "perm", Usage: "Comma separated permutation, e.g. 1,0"},
			},
			Action: func(c *cli.Context) error {
				path, err := pathArgument(c)
				if err != nil {
					return err
				}
				perm, err := parseInts(c.String("perm"))
				if err != nil {
					return err
				}
				args.Transpose = &TransposeArguments{Path: path, Perm: perm}
				return nil
			},
		},
		{
			Name:      "sort",
			Usage:     "Sort along an axis",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "axis,a", Value: 0},
				cli.BoolFlag{Name: "flat", Usage: "Sort all elements ignoring the shape"},
			},
			Action: func(c *cli.Context) error {
				path, err := pathArgument(c)
				if err != nil {
					return err
				}
				args.Sort = &SortArguments{Path: path, Axis: c.Int("axis"), Flat: c.Bool("flat")}
				return nil
			},
		},
		{
			Name:      "reduce",
			Usage:     "Fold an axis with sum, prod, min or max",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "axis,a", Value: 0},
				cli.StringFlag{Name: "op", Value: "sum"},
			},
			Action: func(c *cli.Context) error {
				path, err := pathArgument(c)
				if err != nil {
					return err
				}
				op := c.String("op")
				if _, ok := reducers[op]; !ok {
					return errors.Wrapf(InvalidArgument, "unknown reduce op %q", op)
				}
				args.Reduce = &ReduceArguments{Path: path, Axis: c.Int("axis"), Op: op}
				return nil
			},
		},
		{
			Name:      "convert",
			Usage:     "Convert between text and binary files",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "to", Value: "bin", Usage: "bin or txt"},
			},
			Action: func(c *cli.Context) error {
				path, err := pathArgument(c)
				if err != nil {
					return err
				}
				to := c.String("to")
				if to != "bin" && to != "txt" {
					return errors.Wrapf(InvalidArgument, "unknown target format %q", to)
				}
				args.Convert = &ConvertArguments{Path: path, To: to}
				return nil
			},
		},
		{
			Name:      "compare",
			Usage:     "Check two arrays for equality within the configured tolerance",
			ArgsUsage: "<file> <file>",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					return MissingArgument
				}
				args.Compare = &CompareArguments{Left: c.Args().Get(0), Right: c.Args().Get(1)}
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		if path := c.GlobalString("config"); path != "" {
			cfg, err := LoadConfig(path)
			if err != nil {
				return err
			}
			args.Settings = cfg
		}
		if c.GlobalIsSet("delimiter") {
			args.Settings.Delimiter = c.GlobalString("delimiter")
		}
		if c.GlobalIsSet("precision") {
			args.Settings.Precision = c.GlobalInt("precision")
		}
		if c.GlobalIsSet("table") {
			args.Settings.Table = c.GlobalBool("table")
		}
		args.Output = c.GlobalString("output")
		args.Append = c.GlobalBool("append")
		args.Verbose = c.GlobalBool("verbose")
		if args.Verbose {
			args.Settings.LogLevel = "debug"
		}
		return args.Settings.Validate()
	}
	app.Action = func(c *cli.Context) error {
		return MissingCommand
	}

	err := app.Run(argv)
	return &args, err
}

func pathArgument(c *cli.Context) (string, error) {
	if c.NArg() < 1 {
		return "", MissingArgument
	}
	return c.Args().Get(0), nil
}

// parseInts parses "1,0,2". The empty string gives nil.
func parseInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(InvalidArgument, "%q is not an integer", p)
		}
		out[i] = v
	}
	return out, nil
}
