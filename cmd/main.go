package main

import (
	"os"

	commands "github.com/damoonazarpazhooh/interleaver/cmd/commands"
)

func main() {
	os.Exit(commands.Run(os.Args, os.Stdout, os.Stderr))
}
