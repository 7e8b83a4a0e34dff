package repository

import "loan-repayment/domain"

// ProductRepositoryMemory keeps a fixed product list. It is never mutated
// after construction, so it is safe for concurrent readers.
type ProductRepositoryMemory struct {
	products []domain.LoanProduct
	byID     map[int]int
}

// NewProductRepositoryMemory copies products. A later product with an id
// already seen replaces the earlier one in place.
func NewProductRepositoryMemory(products []domain.LoanProduct) *ProductRepositoryMemory {
	r := &ProductRepositoryMemory{
		products: make([]domain.LoanProduct, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if i, ok := r.byID[p.Identity()]; ok {
			r.products[i] = p
			continue
		}
		r.byID[p.Identity()] = len(r.products)
		r.products = append(r.products, p)
	}
	return r
}

// List returns a copy of the products in insertion order.
func (r *ProductRepositoryMemory) List() []domain.LoanProduct {
	out := make([]domain.LoanProduct, len(r.products))
	copy(out, r.products)
	return out
}

func (r *ProductRepositoryMemory) FindByID(id int) (domain.LoanProduct, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.LoanProduct{}, false
	}
	return r.products[i], true
}
