package main

import (
	"os"

	"github.com/arjunm/dsamaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
