package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/covelane/ltc-data-api/internal/middleware/authjwt"
	"github.com/covelane/ltc-data-api/internal/platform/config"
)

// RegisterRoutes is the single entry point for setting up auth routes.
func RegisterRoutes(app fiber.Router, handler *Handler, cfg *config.Config) {
	group := app.Group("/auth")

	group.Post("/login", handler.Login)

	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	group.Get("/me", jwtMiddleware, handler.Me)
}
