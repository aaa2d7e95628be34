package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rel2avro/internal/columns"
)

func newColumnsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "columns FILE",
		Short: "Print the Avro schema of every column in a YAML column file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runColumns(opts, args[0])
		},
	}
}

func runColumns(opts *globalOptions, path string) error {
	f, err := columns.LoadFile(path)
	if err != nil {
		return err
	}

	opts.log.WithFields(logrus.Fields{"file": path, "name": f.Name, "columns": len(f.Columns)}).Debug("loaded")

	results, diags := columns.MapColumns(f)
	for _, r := range results {
		opts.dumpType(r.Column.Name, r.Type)
		fmt.Fprintf(opts.out, "%s: %s\n", r.Column.Name, r.Schema)
	}

	for _, d := range diags.Warnings {
		opts.log.WithFields(logrus.Fields{"code": d.Code, "severity": d.Severity}).Warn(d.String())
	}

	for _, d := range diags.Infos {
		opts.log.WithFields(logrus.Fields{"code": d.Code, "severity": d.Severity}).Debug(d.String())
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("%d of %d columns could not be mapped: %w", len(diags.Errors), len(f.Columns), err)
	}

	return nil
}
