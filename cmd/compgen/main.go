package main

import (
	"os"

	"github.com/interpretive-systems/compgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
