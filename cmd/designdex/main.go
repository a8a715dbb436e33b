// designdex is a multi-domain design asset search engine with an HTTP
// API and a local CLI.
package main

import (
	"os"

	"github.com/kailas-cloud/designdex/cmd/designdex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
