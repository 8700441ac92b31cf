// Package cmd wires the jsonfix command-line tool together, one
// cobra.Command per subcommand, following the layout of the other
// cobra-based CLIs in this dependency pack (root.go owns the shared
// flags, every other file registers itself in init()).
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jsonfix",
		Short:        "jsonfix",
		SilenceUsage: true,
		Long:         `A fault-tolerant JSON reader: parses malformed input by recovering locally instead of aborting, and reports what it had to repair.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	log = logrus.New()

	strict      bool
	maxDepth    int
	noComments  bool
	noTrailing  bool
	noPython    bool
	noUndefined bool
	debug       bool
)

// Execute runs the root command; its return error is what main turns
// into a process exit code.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "abort on the first diagnostic instead of recovering")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 100, "maximum nested container depth")
	rootCmd.PersistentFlags().BoolVar(&noComments, "no-comments", false, "reject // and /* */ comments instead of skipping them")
	rootCmd.PersistentFlags().BoolVar(&noTrailing, "no-trailing-comma", false, "report trailing commas instead of silently accepting them")
	rootCmd.PersistentFlags().BoolVar(&noPython, "no-python-tokens", false, "don't convert True/False/None to JSON literals")
	rootCmd.PersistentFlags().BoolVar(&noUndefined, "no-undefined", false, "don't convert undefined to null")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log each recovery as it is applied and pretty-dump the parsed tree")

	return rootCmd.Execute()
}

func init() {
}
