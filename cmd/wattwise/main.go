package main

import (
	"fmt"
	"os"

	"github.com/wattwise/wattwise/internal/cli"
	"github.com/wattwise/wattwise/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the root command. Split from main for testability.
func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
