package main

import (
	"os"

	"github.com/PraloyG18/Banking-Application/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
