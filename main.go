package main

import (
	"os"

	"github.com/aaearon/deskauth/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
