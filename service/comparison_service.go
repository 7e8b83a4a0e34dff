package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	jsoniter "github.com/json-iterator/go"

	"loan-repayment/domain"
	"loan-repayment/logging"
	"loan-repayment/repository"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ComparisonService prices a loan against the product catalogue and caches
// the result.
type ComparisonService struct {
	products repository.ProductRepository
	cache    repository.CacheRepository
	log      logr.Logger
}

func NewComparisonService(
	products repository.ProductRepository,
	cache repository.CacheRepository,
) *ComparisonService {
	return &ComparisonService{
		products: products,
		cache:    cache,
		log:      logging.Log().WithName("compare"),
	}
}

// Products lists the catalogue.
func (s *ComparisonService) Products() []domain.LoanProduct {
	return s.products.List()
}

// Compare returns one comparison per selected product, in selection order.
func (s *ComparisonService) Compare(
	input domain.CompareInput,
) ([]domain.MonthlyRepaymentComparison, error) {

	if err := validateAmount(input.Principal); err != nil {
		return nil, err
	}
	term, err := newTerm(input.TermYears)
	if err != nil {
		return nil, err
	}
	if len(input.ProductIDs) > MaxProductsPerCompare {
		return nil, invalid("product_ids", "at most %d products can be compared", MaxProductsPerCompare)
	}

	products, err := s.selectProducts(input.ProductIDs)
	if err != nil {
		return nil, err
	}

	amount := domain.NewLoanAmount(input.CurrencyCode, input.Principal)
	key := comparisonKey(amount, term, products)

	if cached, ok := s.fromCache(key); ok {
		return cached, nil
	}

	compared := NewProductComparer(amount, products).CompareMonthlyRepayments(term)
	s.toCache(key, compared)

	return compared, nil
}

func (s *ComparisonService) selectProducts(ids []int) ([]domain.LoanProduct, error) {
	if len(ids) == 0 {
		return s.products.List(), nil
	}
	products := make([]domain.LoanProduct, 0, len(ids))
	for _, id := range ids {
		p, ok := s.products.FindByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		products = append(products, p)
	}
	return products, nil
}

// comparisonKey covers everything that affects the result, including each
// product's current name and rate.
func comparisonKey(amount domain.LoanAmount, term domain.LoanTerm, products []domain.LoanProduct) string {
	var b strings.Builder
	b.WriteString("compare:")
	b.WriteString(strconv.Quote(amount.CurrencyCode()))
	b.WriteByte(':')
	b.WriteString(amount.Principal().String())
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(term.Years()))
	for _, p := range products {
		fmt.Fprintf(&b, ":%d=%s@%s", p.Identity(), strconv.Quote(p.ProductName()), p.InterestRate())
	}
	return b.String()
}

func (s *ComparisonService) fromCache(key string) ([]domain.MonthlyRepaymentComparison, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	var views []domain.ComparisonView
	if err := json.UnmarshalFromString(raw, &views); err != nil {
		s.log.Error(err, "discarding unreadable cache entry", "key", key)
		return nil, false
	}
	s.log.V(1).Info("cache hit", "key", key)

	compared := make([]domain.MonthlyRepaymentComparison, len(views))
	for i, v := range views {
		compared[i] = v.Comparison()
	}
	return compared, true
}

// toCache logs and drops cache failures; the comparison itself already
// succeeded.
func (s *ComparisonService) toCache(key string, compared []domain.MonthlyRepaymentComparison) {
	views := make([]domain.ComparisonView, len(compared))
	for i, c := range compared {
		views[i] = c.View()
	}
	raw, err := json.MarshalToString(views)
	if err != nil {
		s.log.Error(err, "failed to encode comparison", "key", key)
		return
	}
	if err := s.cache.Set(key, raw); err != nil {
		s.log.Error(err, "failed to cache comparison", "key", key)
	}
}
