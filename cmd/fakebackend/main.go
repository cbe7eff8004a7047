// Command fakebackend builds synthetic quantum backend descriptors.
package main

import (
	"os"

	"github.com/katalvlaran/fakebackend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
