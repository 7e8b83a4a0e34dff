package http

import "net/http"

// NewRouter mounts every endpoint behind the rate limiter.
func NewRouter(
	loans *LoanHandler,
	compare *CompareHandler,
	limiter *RateLimiter,
) http.Handler {
	mux := http.NewServeMux()
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux.Handle("/loan/calculate", limited(loans.CalculateLoan))
	mux.Handle("/loan/compare", limited(compare.Compare))
	mux.Handle("/loan/products", limited(compare.ListProducts))

	return mux
}
