package main

import (
	"fmt"
	"os"

	"conway/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "conway:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
