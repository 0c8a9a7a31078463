package main

import (
	"os"

	"github.com/tanocee/bikdecimal/cmd/bikdecimal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
