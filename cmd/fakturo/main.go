package main

import (
	"os"

	"github.com/fakturo-dev/fakturo/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
