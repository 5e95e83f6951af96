// Package server assembles the HTTP application: middleware, public and
// protected routes, health and metrics.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	"github.com/wichananm65/shopping-backend/internal/cart"
	"github.com/wichananm65/shopping-backend/internal/logger"
	"github.com/wichananm65/shopping-backend/internal/metrics"
	"github.com/wichananm65/shopping-backend/internal/order"
	"github.com/wichananm65/shopping-backend/internal/product"
	"github.com/wichananm65/shopping-backend/internal/user"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	JWTSecret          string
	LoginRatePerMinute int
	// DB is checked by /health when set.
	DB Pinger
}

type Handlers struct {
	Users    *user.Handler
	Products *product.Handler
	Carts    *cart.Handler
	Orders   *order.Handler
}

func New(opts Options, h Handlers, log *zap.Logger, m *metrics.ServerMetrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "shopping-backend",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.RequestLogger(log))
	app.Use(m.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", health(opts.DB))
	app.Get("/metrics", m.Handler())

	api := app.Group("/api/v1")
	h.Users.RegisterPublicRoutes(api, PerMinute(opts.LoginRatePerMinute))
	h.Products.RegisterPublicRoutes(api)

	protected := api.Group("", jwtware.New(jwtware.Config{
		SigningKey: []byte(opts.JWTSecret),
		ContextKey: user.ContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	}))
	h.Carts.RegisterProtectedRoutes(protected)
	h.Orders.RegisterProtectedRoutes(protected)

	return app
}

func health(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// errorHandler answers every error that reached Fiber unhandled. Anything
// that is not a *fiber.Error is a 500 and gets logged.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}
