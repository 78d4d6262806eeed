// Package main is the entry point for the omnicalc admin CLI.
package main

import (
	"os"

	cli "omnicalc/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
