package main

import (
	"os"
)

func main() {
	// On failure cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if newRootCmd().Execute() != nil {
		os.Exit(1)
	}
}
