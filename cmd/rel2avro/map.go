package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rel2avro/internal/typeparse"
	"rel2avro/mapper"
)

func newMapCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "map TYPE...",
		Short: "Print the Avro schema of each SQL type",
		Example: `  rel2avro map BIGINT 'VARCHAR(10) ARRAY'
  rel2avro map 'ARRAY<ARRAY<DOUBLE>>'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMap(opts, args)
		},
	}
}

func runMap(opts *globalOptions, args []string) error {
	for _, text := range args {
		t, err := typeparse.Parse(text)
		if err != nil {
			return err
		}
		opts.dumpType(text, t)

		s, err := mapper.MapType(t)
		if err != nil {
			return err
		}

		opts.log.WithFields(logrus.Fields{"type": t.String(), "schema": s.Type()}).Debug("mapped")
		fmt.Fprintln(opts.out, s)
	}

	return nil
}
