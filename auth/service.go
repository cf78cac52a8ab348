package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/covelane/ltc-data-api/auth/errors"
	"github.com/covelane/ltc-data-api/auth/models"
	"github.com/covelane/ltc-data-api/internal/pkg/log"
	"github.com/covelane/ltc-data-api/internal/platform/config"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

const usersTable = "API_USERS"

// Service authenticates callers against the warehouse user table and
// issues access tokens.
type Service struct {
	executor warehouse.Executor
	jwt      config.JWTConfig
}

// NewService creates an auth service with the executor injected.
func NewService(executor warehouse.Executor, jwtConfig config.JWTConfig) *Service {
	return &Service{executor: executor, jwt: jwtConfig}
}

// serviceSession is the session context for queries this service runs on
// its own behalf, before any caller identity exists.
func serviceSession() warehouse.SessionContext {
	return warehouse.SessionContext{Role: types.DefaultRole, Carrier: types.AllCarriers}
}

// Authenticate verifies the credentials against API_USERS. A missing user
// and a wrong password both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	rows, err := s.executor.RunSQL(ctx, serviceSession(), `
		SELECT "USER_ID", "USERNAME", "PASSWORD_HASH", "WAREHOUSE_ROLE", "CARRIER_ACCESS", "IS_ACTIVE"
		FROM `+warehouse.QuoteIdent(usersTable)+`
		WHERE "USERNAME" = $1 AND "IS_ACTIVE" = TRUE
		LIMIT 1`, username)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		log.Warn("login attempt for unknown or inactive user: %s", username)
		return nil, errors.ErrInvalidCredentials
	}

	user := userFromRow(rows[0])
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		log.Warn("invalid password for user: %s", username)
		return nil, errors.ErrInvalidCredentials
	}

	// Best effort: a failed timestamp update must not block the login.
	if _, err := s.executor.RunSQL(ctx, serviceSession(), `
		UPDATE `+warehouse.QuoteIdent(usersTable)+`
		SET "LAST_LOGIN" = CURRENT_TIMESTAMP
		WHERE "USER_ID" = $1`, user.UserID); err != nil {
		log.Warn("failed to update last login for %s: %v", username, err)
	}

	user.PasswordHash = nil
	return user, nil
}

// CreateToken issues an HS256 access token carrying the caller's identity,
// role and carrier scope.
func (s *Service) CreateToken(user *models.User) (*models.TokenResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":        user.UserID,
		"username":       user.Username,
		"role":           user.Role,
		"carrier_access": user.CarrierAccess,
		"iat":            now.Unix(),
		"exp":            now.Add(s.jwt.ExpiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwt.ExpiresIn.Seconds()),
		UserID:      user.UserID,
		Username:    user.Username,
		Role:        user.Role,
	}, nil
}

func userFromRow(row warehouse.Row) *models.User {
	user := &models.User{Role: types.DefaultRole, CarrierAccess: types.AllCarriers}
	if v, ok := row.Get("USER_ID"); ok {
		user.UserID = warehouse.AsString(v)
	}
	if v, ok := row.Get("USERNAME"); ok {
		user.Username = warehouse.AsString(v)
	}
	if v, ok := row.Get("PASSWORD_HASH"); ok {
		user.PasswordHash = []byte(warehouse.AsString(v))
	}
	if v, ok := row.Get("WAREHOUSE_ROLE"); ok && warehouse.AsString(v) != "" {
		user.Role = warehouse.AsString(v)
	}
	if v, ok := row.Get("CARRIER_ACCESS"); ok && warehouse.AsString(v) != "" {
		user.CarrierAccess = warehouse.AsString(v)
	}
	if v, ok := row.Get("IS_ACTIVE"); ok {
		active, _ := v.(bool)
		user.IsActive = active
	}
	return user
}
