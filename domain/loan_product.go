package domain

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Entity as explained in the DDD book.
// Entities compare by identity, not by attributes.
type Entity[T any, ID comparable] interface {
	// SameIdentityAs return true if the identities are the same, regardless of other attributes.
	SameIdentityAs(other T) bool

	// Identity return the identity of this entity.
	Identity() ID
}

// LoanProduct is a lender's product. Two products with the same id are the
// same product whatever their name or rate.
type LoanProduct struct {
	id           int
	productName  string
	interestRate decimal.Decimal
}

var _ Entity[LoanProduct, int] = LoanProduct{}

func NewLoanProduct(id int, productName string, interestRate decimal.Decimal) LoanProduct {
	return LoanProduct{id: id, productName: productName, interestRate: interestRate}
}

func (p LoanProduct) Identity() int { return p.id }

func (p LoanProduct) ProductName() string { return p.productName }

// InterestRate is the annual rate in percent.
func (p LoanProduct) InterestRate() decimal.Decimal { return p.interestRate }

func (p LoanProduct) SameIdentityAs(other LoanProduct) bool {
	return p.id == other.id
}

// HashCode depends on the id only.
func (p LoanProduct) HashCode() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p.id))
	return xxhash.Sum64(buf[:]) ^ 31
}
