package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/creation-code/internal/cli"
	"github.com/trebuchet-org/creation-code/internal/cli/render"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err))
		os.Exit(1)
	}
}
