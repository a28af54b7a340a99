package main

import (
	"os"

	"github.com/msto63/fnkit/cmd/fnkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
