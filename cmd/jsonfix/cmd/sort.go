package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Parse a document and print it with every object's keys sorted",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		sorted := jsontree.SortKeys(parseAndReport(input))
		fmt.Println(jsontree.Pretty(sorted, "  "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
