package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"loan-repayment/logging"
	"loan-repayment/output"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	color   string
	verbose int
}

func (o *rootOptions) colors() *output.Colors {
	return output.NewColors(output.ParseColorMode(o.color))
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "loanrepay",
		Short: "Monthly loan repayment calculator and product comparison",
		Long: `loanrepay prices fixed-rate amortizing loans.

It computes the monthly repayment for a principal, rate and term, compares
the repayment across the product catalogue, checks repayment tables against
the calculator and serves the same operations over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(opts.verbose)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().IntVarP(&opts.verbose, "verbose", "v", 0, "Log verbosity")

	cmd.AddCommand(
		newServeCmd(opts),
		newCalculateCmd(opts),
		newCompareCmd(opts),
		newVerifyCmd(opts),
	)
	return cmd
}

func parseDecimalFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}
