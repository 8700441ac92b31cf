package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Parse a document and print counts of each value kind and the maximum nesting depth",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		s := jsontree.Stats(parseAndReport(input))
		fmt.Printf("null:    %d\n", s.NullCount)
		fmt.Printf("bool:    %d\n", s.BoolCount)
		fmt.Printf("number:  %d\n", s.NumberCount)
		fmt.Printf("string:  %d\n", s.StringCount)
		fmt.Printf("array:   %d\n", s.ArrayCount)
		fmt.Printf("object:  %d\n", s.ObjectCount)
		fmt.Printf("members: %d\n", s.MemberCount)
		fmt.Printf("depth:   %d\n", s.MaxDepth)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
