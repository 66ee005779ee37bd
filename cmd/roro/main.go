package main

import (
	"os"

	"github.com/roro-dev/roro/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
