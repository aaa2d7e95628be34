package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rel2avro/reltype"
)

type globalOptions struct {
	verbose bool
	dump    bool
	out     io.Writer
	log     *logrus.Logger
}

// newRootCmd writes schemas to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &globalOptions{out: out, log: logrus.New()}

	root := &cobra.Command{
		Use:           "rel2avro",
		Short:         "Map relational SQL types onto Avro schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			opts.log.SetOutput(errOut)
			opts.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if opts.verbose {
				opts.log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&opts.dump, "dump", false, "dump parsed type descriptors to stderr")

	root.AddCommand(newMapCmd(opts), newColumnsCmd(opts))

	return root
}

func (o *globalOptions) dumpType(label string, t reltype.Type) {
	if !o.dump {
		return
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true}
	o.log.Infof("%s:\n%s", label, cfg.Sdump(t))
}
