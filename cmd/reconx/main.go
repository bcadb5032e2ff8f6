package main

import (
	"os"

	"reconx/cmd/reconx/commands"
	"reconx/internal/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.New(false).Errorf("%v", err)
		os.Exit(1)
	}
}
