package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/covelane/ltc-data-api/claims/models"
	"github.com/covelane/ltc-data-api/internal/types"
	"github.com/covelane/ltc-data-api/internal/warehouse"
)

type mockClaimsService struct {
	mock.Mock
}

func (m *mockClaimsService) GetClaims(ctx context.Context, user types.UserContext, filters *models.ClaimsFilters) ([]warehouse.Row, error) {
	args := m.Called(ctx, user, filters)
	if rows, ok := args.Get(0).([]warehouse.Row); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClaimsService) GetClaimByID(ctx context.Context, user types.UserContext, rfbID int64) (warehouse.Row, error) {
	args := m.Called(ctx, user, rfbID)
	return args.Get(0).(warehouse.Row), args.Error(1)
}

func (m *mockClaimsService) GetClaimsAnalytics(ctx context.Context, user types.UserContext) (*models.ClaimsAnalytics, error) {
	args := m.Called(ctx, user)
	if analytics, ok := args.Get(0).(*models.ClaimsAnalytics); ok {
		return analytics, args.Error(1)
	}
	return nil, args.Error(1)
}

func testApp(service *mockClaimsService) *fiber.App {
	app := fiber.New()
	// Stand-in for the JWT middleware: inject a fixed verified caller.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(types.UserCtxName, types.UserContext{
			UserID:   "u-7",
			Username: "adjuster",
			Role:     "ANALYST",
			Carrier:  "ALL",
		})
		return c.Next()
	})

	handler := NewClaimsHandler(service)
	app.Get("/claims", handler.GetClaims)
	app.Get("/claims/analytics/summary", handler.GetClaimsAnalytics)
	app.Get("/claims/:rfbId", handler.GetClaimByID)
	return app
}

func TestGetClaims_DecodesFilters(t *testing.T) {
	service := new(mockClaimsService)
	app := testApp(service)

	service.On("GetClaims", mock.Anything, mock.Anything, mock.MatchedBy(func(f *models.ClaimsFilters) bool {
		return f.ClaimantName == "Smith" && f.LifeState == "CA,WA" && f.Limit == 25
	})).Return([]warehouse.Row{}, nil)

	req := httptest.NewRequest("GET", "/claims?claimant_name=Smith&life_state=CA,WA&limit=25", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestGetClaims_RejectsBadDate(t *testing.T) {
	service := new(mockClaimsService)
	app := testApp(service)

	req := httptest.NewRequest("GET", "/claims?from_snapshot_date=15-01-2024", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "VALIDATION_FAILED", payload["code"])
	service.AssertNotCalled(t, "GetClaims")
}

func TestGetClaimByID_NonIntegerParam(t *testing.T) {
	service := new(mockClaimsService)
	app := testApp(service)

	req := httptest.NewRequest("GET", "/claims/not-a-number", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "GetClaimByID")
}

func TestGetClaimsAnalytics(t *testing.T) {
	service := new(mockClaimsService)
	app := testApp(service)

	service.On("GetClaimsAnalytics", mock.Anything, mock.Anything).
		Return(&models.ClaimsAnalytics{TotalClaims: 12}, nil)

	req := httptest.NewRequest("GET", "/claims/analytics/summary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload models.ClaimsAnalytics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, int64(12), payload.TotalClaims)
}

func TestGetClaims_MissingUserContext(t *testing.T) {
	service := new(mockClaimsService)
	app := fiber.New()
	handler := NewClaimsHandler(service)
	app.Get("/claims", handler.GetClaims)

	req := httptest.NewRequest("GET", "/claims", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
