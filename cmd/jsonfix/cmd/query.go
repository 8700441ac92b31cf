package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var queryCmd = &cobra.Command{
	Use:   "query path [file]",
	Short: "Parse a document and resolve a dot/bracket path against it, e.g. a.b[0]",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		input, err := readInput(args[1:])
		if err != nil {
			return err
		}

		v, ok := jsontree.Query(parseAndReport(input), path)
		if !ok {
			return fmt.Errorf("path %q not found", path)
		}
		fmt.Println(jsontree.Minify(v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
