package main

import (
	"os"

	"github.com/cwbudde/go-walrus/cmd/walrus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
