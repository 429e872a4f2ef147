// Command glbanim retargets animation clips onto glTF avatars.
package main

import (
	"os"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(wire)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
