package main

import (
	"fmt"
	"os"

	"github.com/planvet/planvet/internal/interface/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
