package main

import (
	"os"

	"github.com/openquant/calcengine/cmd/calcrun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
