package authjwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/covelane/ltc-data-api/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the HMAC signing key tokens are verified against.
	Secret string
	// UserCtxName is the locals key the UserContext is stored under.
	UserCtxName string
}

// New creates a bearer-token middleware. A missing, malformed or expired
// token rejects the request with 401 before any filter or query work
// begins; on success the verified caller is stored in locals as a
// types.UserContext.
func New(cfg Config) fiber.Handler {
	if cfg.Secret == "" {
		panic("authjwt: secret is required")
	}
	userCtxName := cfg.UserCtxName
	if userCtxName == "" {
		userCtxName = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		var tokenString string

		authHeader := c.Get(types.HeaderAuthorization)
		if authHeader != "" && strings.HasPrefix(authHeader, types.BearerPrefix) {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid JWT",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Enforce the expected signing algorithm.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		})

		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token claim format",
			})
		}

		if exp, ok := claims["exp"].(float64); ok {
			if int64(exp) < time.Now().Unix() {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "Token has expired",
				})
			}
		}

		userID, _ := claims["user_id"].(string)
		username, _ := claims["username"].(string)
		if userID == "" || username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authentication credentials",
			})
		}

		role, _ := claims["role"].(string)
		if role == "" {
			role = types.DefaultRole
		}
		carrier, _ := claims["carrier_access"].(string)
		if carrier == "" {
			carrier = types.AllCarriers
		}

		c.Locals(userCtxName, types.UserContext{
			UserID:   userID,
			Username: username,
			Role:     role,
			Carrier:  carrier,
		})

		return c.Next()
	}
}
