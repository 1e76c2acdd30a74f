package main

import (
	"os"

	"github.com/gsh-dev/gsh/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
