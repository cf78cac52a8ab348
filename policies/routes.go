package policies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/covelane/ltc-data-api/internal/middleware/authjwt"
	"github.com/covelane/ltc-data-api/internal/platform/config"
	"github.com/covelane/ltc-data-api/policies/handlers"
)

// RegisterRoutes is the single entry point for setting up policy routes.
// Every route requires a verified bearer token.
func RegisterRoutes(app fiber.Router, handler *handlers.PolicyHandler, cfg *config.Config) {
	jwtMiddleware := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/policies", jwtMiddleware)

	group.Get("/", handler.GetPolicies)
	group.Get("/analytics/summary", handler.GetPolicySummary)

	// Parameterized route last so it cannot shadow the analytics path.
	group.Get("/:policyId", handler.GetPolicyByID)
}
