// Package logging owns the root logger.
package logging

import (
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/shopspring/decimal"
)

const verboseEnv = "LOAN_VERBOSE"

var root logr.Logger

// Log returns the root logger.
func Log() logr.Logger { return root }

func init() { // Env verbosity applies until Init overrides it.
	root = stdr.New(log.New(os.Stderr, "loan-repayment ", log.Ltime))
	if n, err := strconv.Atoi(os.Getenv(verboseEnv)); err == nil {
		stdr.SetVerbosity(n)
	}
}

// Init sets verbosity for the root logger.
func Init(verbosity int) {
	if verbosity != 0 {
		stdr.SetVerbosity(verbosity)
	}
}

type logDecimal struct{ d decimal.Decimal }

func (l logDecimal) MarshalLog() any { return l.d.String() }

// Decimal wraps d so it is logged as a plain number instead of a struct dump.
func Decimal(d decimal.Decimal) logr.Marshaler { return logDecimal{d: d} }
