package claims

import (
	"github.com/gofiber/fiber/v2"

	"github.com/covelane/ltc-data-api/claims/handlers"
	"github.com/covelane/ltc-data-api/internal/middleware/authjwt"
	"github.com/covelane/ltc-data-api/internal/platform/config"
)

// RegisterRoutes is the single entry point for setting up claims routes.
// Every route requires a verified bearer token.
func RegisterRoutes(app fiber.Router, handler *handlers.ClaimsHandler, cfg *config.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/claims", jwtMiddleware)

	group.Get("/", handler.GetClaims)
	group.Get("/analytics/summary", handler.GetClaimsAnalytics)

	// Parameterized route last so it cannot shadow the analytics path.
	group.Get("/:rfbId", handler.GetClaimByID)
}
