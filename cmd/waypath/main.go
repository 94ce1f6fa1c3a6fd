// Command waypath orders map markers into a short closed tour, steering around
// blocked street segments, and manages hand-made custom routes.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
