package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/covelane/ltc-data-api/internal/warehouse"
)

// MockExecutor is a testify mock of warehouse.Executor for service tests.
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Run(ctx context.Context, session warehouse.SessionContext, q *warehouse.Query) ([]warehouse.Row, error) {
	args := m.Called(ctx, session, q)
	if rows, ok := args.Get(0).([]warehouse.Row); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExecutor) RunSQL(ctx context.Context, session warehouse.SessionContext, query string, queryArgs ...interface{}) ([]warehouse.Row, error) {
	callArgs := []interface{}{ctx, session, query}
	for _, a := range queryArgs {
		callArgs = append(callArgs, a)
	}
	args := m.Called(callArgs...)
	if rows, ok := args.Get(0).([]warehouse.Row); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}
