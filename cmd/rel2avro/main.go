// Package main provides the CLI entrypoint for rel2avro.
//
// rel2avro maps relational (SQL planner) types onto Avro schemas:
//   - map: maps SQL type text given as arguments
//   - columns: maps every column of a YAML column file
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
