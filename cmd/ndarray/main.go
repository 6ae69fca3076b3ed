// Package main provides the ndarray command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const version = "v0.1.0"

func main() {
	args, err := ParseArguments(os.Args, version)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	level, _ := logrus.ParseLevel(args.Settings.LogLevel)
	logrus.SetLevel(level)
	logrus.Debugf("Settings: %+v", args.Settings)

	if err := Run(os.Stdout, version, args); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(2)
	}
}
