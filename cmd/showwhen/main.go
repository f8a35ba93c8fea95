package main

import (
	"os"

	"github.com/solatis/showwhen/cmd/showwhen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
