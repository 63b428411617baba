// Command glyph3d measures and lays out text in 3D, samples curves,
// builds font atlases, evaluates scene scripts and runs the demo state
// headlessly. Results are printed as YAML.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "glyph3d:", err)
		os.Exit(1)
	}
}
