// Package main is the entry point for the storefrontctl CLI.
package main

import (
	"os"

	"github.com/guttosm/storefront-service/cmd/storefrontctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
