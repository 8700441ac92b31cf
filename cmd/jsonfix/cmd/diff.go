package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faultline/jsonfix/jsontree"
)

var diffCmd = &cobra.Command{
	Use:   "diff file-a file-b",
	Short: "Parse two documents and print their leaf-level differences",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataA, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		dataB, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[1], err)
		}

		a := parseAndReport(string(dataA))
		b := parseAndReport(string(dataB))

		changes := jsontree.Diff(a, b)
		if len(changes) == 0 {
			fmt.Println("no differences")
			return nil
		}
		for _, c := range changes {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
