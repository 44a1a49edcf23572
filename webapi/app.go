// Package webapi exposes the ledger over HTTP with Fiber. It owns the mapping
// from engine errors to transport status codes; the engine never sees HTTP.
package webapi

import (
	"github.com/finbooks/ledger/infra/initializer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// New builds the Fiber app with middleware and all routes registered.
func New(deps *initializer.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	if deps.Cfg.Env == "development" {
		app.Use(fiberlog.New())
	}
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Cfg.RateLimit.MaxRequests,
		Expiration: deps.Cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	AccountRoutes(app, deps.Accounts, deps.Ledger)
	TransactionRoutes(app, deps.Ledger)

	return app
}
