package main

import (
	"os"

	"github.com/faultline/jsonfix/cmd/jsonfix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
