package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/covelane/ltc-data-api/auth"
	"github.com/covelane/ltc-data-api/claims"
	claimsHandlers "github.com/covelane/ltc-data-api/claims/handlers"
	claimsServices "github.com/covelane/ltc-data-api/claims/services"
	"github.com/covelane/ltc-data-api/internal/cache"
	"github.com/covelane/ltc-data-api/internal/middleware/requestid"
	"github.com/covelane/ltc-data-api/internal/pkg/log"
	platformconfig "github.com/covelane/ltc-data-api/internal/platform/config"
	"github.com/covelane/ltc-data-api/internal/warehouse"
	"github.com/covelane/ltc-data-api/policies"
	policyHandlers "github.com/covelane/ltc-data-api/policies/handlers"
	policyServices "github.com/covelane/ltc-data-api/policies/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("failed to load config: %v", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Error("unhandled error on %s: %v", c.Path(), err)

			// A handler may have written its own error response already.
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"code":    "INTERNAL_ERROR",
				"message": "An unexpected error occurred",
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.Origin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	ctx := context.Background()
	client, err := warehouse.NewClient(ctx, &cfg.Warehouse)
	if err != nil {
		log.Error("failed to connect to warehouse: %v", err)
		os.Exit(1)
	}

	analyticsCache := cache.New(&cfg.Cache)

	authService := auth.NewService(client, cfg.JWT)
	authHandler := auth.NewHandler(authService)

	policyService := policyServices.NewPolicyService(client, analyticsCache, cfg.Cache.TTL)
	policyHandler := policyHandlers.NewPolicyHandler(policyService)

	claimsService := claimsServices.NewClaimsService(client, analyticsCache, cfg.Cache.TTL)
	claimsHandler := claimsHandlers.NewClaimsHandler(claimsService)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := client.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"detail": "warehouse unreachable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group(cfg.Server.BaseRoute)
	auth.RegisterRoutes(api, authHandler, cfg)
	policies.RegisterRoutes(api, policyHandler, cfg)
	claims.RegisterRoutes(api, claimsHandler, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("starting %s on %s (base route %s)", cfg.App.Name, addr, cfg.Server.BaseRoute)
		if err := app.Listen(addr); err != nil {
			log.Error("server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("shutdown error: %v", err)
	}
	if err := client.Close(); err != nil {
		log.Error("warehouse close error: %v", err)
	}
}
