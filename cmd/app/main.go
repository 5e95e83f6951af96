package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wichananm65/shopping-backend/internal/cart"
	"github.com/wichananm65/shopping-backend/internal/config"
	"github.com/wichananm65/shopping-backend/internal/database"
	"github.com/wichananm65/shopping-backend/internal/logger"
	"github.com/wichananm65/shopping-backend/internal/metrics"
	"github.com/wichananm65/shopping-backend/internal/order"
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/server"
	"github.com/wichananm65/shopping-backend/internal/user"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(exitCode(log, run(cfg, log)))
}

// exitCode logs a fatal run error and flushes the logger before main exits.
func exitCode(log *zap.Logger, err error) int {
	code := 0
	if err != nil {
		log.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = log.Sync()
	return code
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	tx := database.NewTransactor(db)
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	productService := product.NewService(product.NewPostgresRepository(db))
	cartRepo := cart.NewPostgresRepository(db)

	if cfg.SeedData {
		if err := seed(ctx, tx, userService, productService, log); err != nil {
			return err
		}
	}

	app := server.New(
		server.Options{
			JWTSecret:          cfg.JWTSecret,
			LoginRatePerMinute: cfg.LoginRatePerMinute,
			DB:                 db,
		},
		server.Handlers{
			Users:    user.NewHandler(userService, user.NewTokenProvider(cfg.JWTSecret, cfg.JWTTTL), log),
			Products: product.NewHandler(productService),
			Carts:    cart.NewHandler(cart.NewService(tx, userService, productService, cartRepo, log)),
			Orders:   order.NewHandler(order.NewService(tx, userService, cartRepo, order.NewPostgresRepository(db), log)),
		},
		log,
		metrics.NewServerMetrics("api"),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		return app.Listen(cfg.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
