package main

import (
	"os"

	"github.com/rustyeddy/stockgame/cmd/stockgame/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
