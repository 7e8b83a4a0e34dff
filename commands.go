package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loan-repayment/config"
	"loan-repayment/domain"
	"loan-repayment/output"
	"loan-repayment/repository"
	"loan-repayment/service"
)

func defaultCurrency() string {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Default().Currency
	}
	return cfg.Currency
}

func newCalculateCmd(opts *rootOptions) *cobra.Command {
	var principal, rate, currency string
	var years int

	cmd := &cobra.Command{
		Use:     "calculate",
		Short:   "Calculate the monthly repayment of a loan",
		Example: `  loanrepay calculate --principal 200000 --rate 6.5 --years 30`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseDecimalFlag("principal", principal)
			if err != nil {
				return err
			}
			r, err := parseDecimalFlag("rate", rate)
			if err != nil {
				return err
			}
			input := domain.LoanInput{
				CurrencyCode: currency,
				Principal:    p,
				InterestRate: r,
				TermYears:    years,
			}

			result, err := service.NewLoanService(repository.NewLoanRepositoryMemory()).CalculateLoan(input)
			if err != nil {
				return err
			}
			output.RenderLoanResult(cmd.OutOrStdout(), input, result, opts.colors())
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "Loan principal")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().IntVar(&years, "years", 0, "Term in years")
	cmd.Flags().StringVar(&currency, "currency", defaultCurrency(), "Currency code")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var principal, currency string
	var years int
	var productIDs []int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the monthly repayment across loan products",
		Example: `  loanrepay compare --principal 200000 --years 30
  loanrepay compare --principal 200000 --years 30 --product 1,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseDecimalFlag("principal", principal)
			if err != nil {
				return err
			}

			comparisons := service.NewComparisonService(
				repository.NewProductRepositoryMemory(repository.DefaultProducts()),
				repository.NewMemoryCache(0),
			)
			compared, err := comparisons.Compare(domain.CompareInput{
				CurrencyCode: currency,
				Principal:    p,
				TermYears:    years,
				ProductIDs:   productIDs,
			})
			if err != nil {
				return err
			}
			output.RenderComparisons(cmd.OutOrStdout(), compared, opts.colors())
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "Loan principal")
	cmd.Flags().IntVar(&years, "years", 0, "Term in years")
	cmd.Flags().StringVar(&currency, "currency", defaultCurrency(), "Currency code")
	cmd.Flags().IntSliceVar(&productIDs, "product", nil, "Product ids to compare (default all)")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.csv>",
		Short: "Check a table of repayment cases against the calculator",
		Long: `verify reads lines of "principal, rate, years, expected" and recomputes
each monthly repayment. Spaces are ignored, so "200 000" is a valid
principal. Blank lines and lines starting with # are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := repository.LoadRepaymentCases(args[0])
			if err != nil {
				return err
			}
			mismatches, err := service.Verify(cases)
			if err != nil {
				return err
			}
			output.RenderVerification(cmd.OutOrStdout(), cases, mismatches, opts.colors())
			if len(mismatches) > 0 {
				return fmt.Errorf("%d of %d cases failed", len(mismatches), len(cases))
			}
			return nil
		},
	}
}
