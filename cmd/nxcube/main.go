// nxcube - CLI for the size-parametric Rubik's cube engine.
package main

import (
	"github.com/seamusw/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}
