package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var yamlCmd = &cobra.Command{
	Use:   "yaml [file]",
	Short: "Parse a document and print it re-encoded as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		out, err := jsontree.ToYAML(parseAndReport(input))
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(yamlCmd)
}
