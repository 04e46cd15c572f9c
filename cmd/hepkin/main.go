// Command hepkin evaluates collider kinematics from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/hepkin/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
