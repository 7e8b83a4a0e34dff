package service

import "github.com/shopspring/decimal"

const (
	MaxTermYears          = 50 // 600 months
	MaxProductsPerCompare = 50
)

var (
	MaxLoanAmount   = decimal.NewFromInt(1_000_000_000)
	MaxInterestRate = decimal.NewFromInt(1000) // percent per year
)
