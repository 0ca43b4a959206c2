// Package cmd provides the storefrontctl commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/storefront-service/internal/logger"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "storefrontctl",
		Short: "Price deliveries and format store hours offline",
		Long: `storefrontctl runs the storefront pricing and hours rules locally.

Fee defaults come from the same DELIVERY_* environment variables as the service.

Examples:
  storefrontctl quote --subtotal 60 --fee-type per_mile --per-mile-fee 1.50 --distance 5 --threshold 99
  storefrontctl quote --cart cart.json --format json
  storefrontctl hours --file hours.json --extended`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logger.Init(level, true)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newQuoteCmd())
	root.AddCommand(newHoursCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
