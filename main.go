package main

import (
	"os"

	"github.com/hrscout/hrscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
