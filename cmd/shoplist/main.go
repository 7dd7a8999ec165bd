package main

import (
	"os"

	"github.com/idilsaglam/shoplist/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Options{}))
}
