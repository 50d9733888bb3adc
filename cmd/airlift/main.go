package main

import (
	"os"

	"Airlift/cmd/airlift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
