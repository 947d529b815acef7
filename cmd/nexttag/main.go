package main

import (
	"context"
	"os"

	"github.com/indaco/nexttag/internal/cli"
	"github.com/indaco/nexttag/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI builds the root command and runs it with args.
func runCLI(args []string) error {
	return cli.New().Run(context.Background(), args)
}
