package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a document and print the recovered tree plus any diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		result := parseAndReport(input)
		fmt.Println(jsontree.Pretty(result, "  "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
