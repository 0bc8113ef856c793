package main

import (
	"os"

	"github.com/abhisek/aether/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
