package main

import (
	"os"

	"github.com/gradebook-cli/gradebook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
