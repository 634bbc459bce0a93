package main

import (
	"os"

	"github.com/Gobd/apischema/cmd/apischema/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
