package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Parse a document and print one line per leaf path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		flat := jsontree.Flatten(parseAndReport(input))

		paths := make([]string, 0, len(flat))
		for p := range flat {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		for _, p := range paths {
			fmt.Printf("%s = %s\n", p, jsontree.Minify(flat[p]))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flattenCmd)
}
