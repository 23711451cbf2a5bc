package main

import (
	"os"

	"decomment/cmd/decomment/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
