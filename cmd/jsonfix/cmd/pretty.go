package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var indent string

var prettyCmd = &cobra.Command{
	Use:   "pretty [file]",
	Short: "Parse a document and print it re-indented",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		fmt.Println(jsontree.Pretty(parseAndReport(input), indent))
		return nil
	},
}

func init() {
	prettyCmd.Flags().StringVar(&indent, "indent", "  ", "indentation string")
	rootCmd.AddCommand(prettyCmd)
}
