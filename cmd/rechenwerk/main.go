package main

import (
	"os"

	"github.com/msto63/rechenwerk/cmd/rechenwerk/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
