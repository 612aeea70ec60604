package main

import (
	"os"

	"github.com/clipline/clipline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
