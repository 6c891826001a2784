package main

import (
	"os"

	"github.com/msto63/trinom/cmd/trinom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
