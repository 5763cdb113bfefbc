package main

import (
	"os"

	"github.com/jask/tacostay/cmd/tacostay/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
