package main

import (
	"os"

	"aelist/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
