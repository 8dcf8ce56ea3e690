// Command squares stores lattice points and enumerates the squares they form.
package main

import (
	"os"

	"github.com/roach88/squares/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
