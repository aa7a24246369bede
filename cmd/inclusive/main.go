// Inclusive - colour vision deficiency simulator
//
// Inclusive shows how colours appear to people with protanopia,
// deuteranopia, tritanopia, their anomalous forms and achromatopsia.
package main

import (
	"os"

	"github.com/jmylchreest/inclusive/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
