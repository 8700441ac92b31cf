package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [file]",
	Short: "Parse a document and print it as compact single-line text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		fmt.Println(jsontree.Minify(parseAndReport(input)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(minifyCmd)
}
