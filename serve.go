package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"loan-repayment/config"
	httpLayer "loan-repayment/http"
	"loan-repayment/logging"
	"loan-repayment/repository"
	"loan-repayment/service"
)

func newServeCmd(_ *rootOptions) *cobra.Command {
	var (
		addr       string
		redisAddr  string
		rateLimit  int
		rateWindow time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.HTTPAddr = addr
			}
			if flags.Changed("redis-addr") {
				cfg.RedisAddr = redisAddr
			}
			if flags.Changed("rate-limit") {
				cfg.RateLimit = rateLimit
			}
			if flags.Changed("rate-window") {
				cfg.RateWindow = rateWindow
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from LOAN_HTTP_ADDR or :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the comparison cache")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "Requests allowed per client and window")
	cmd.Flags().DurationVar(&rateWindow, "rate-window", 0, "Rate limit window")
	return cmd
}

func newCache(ctx context.Context, cfg config.Config) (repository.CacheRepository, func(), error) {
	if cfg.RedisAddr == "" {
		cache := repository.NewMemoryCache(cfg.CacheTTL)
		return cache, func() { _ = cache.Close() }, nil
	}
	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, err
	}
	return cache, func() { _ = cache.Close() }, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logging.Log().WithName("serve")

	cache, closeCache, err := newCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	loanService := service.NewLoanService(repository.NewLoanRepositoryMemory())
	comparisonService := service.NewComparisonService(
		repository.NewProductRepositoryMemory(repository.DefaultProducts()),
		cache,
	)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpLayer.NewRouter(
			httpLayer.NewLoanHandler(loanService),
			httpLayer.NewCompareHandler(comparisonService),
			rateLimiter,
		),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr, "redis", cfg.RedisAddr != "")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return errors.WithMessage(err, "server failed")
	case <-quit:
		log.Info("shutting down")
	case <-ctx.Done():
		log.Info("context done, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.WithMessage(err, "shutdown")
	}

	log.Info("server exited")
	return nil
}
