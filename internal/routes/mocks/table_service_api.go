package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/routes"
)

// TableServiceAPI is a mock type for the TableServiceAPI interface.
type TableServiceAPI struct {
	mock.Mock
}

func (m *TableServiceAPI) GetRouteTable(ctx context.Context, tableID string) (*routes.RemoteRouteTable, bool, error) {
	args := m.Called(ctx, tableID)
	var out *routes.RemoteRouteTable
	if args.Get(0) != nil {
		out = args.Get(0).(*routes.RemoteRouteTable)
	}
	return out, args.Bool(1), args.Error(2)
}

func (m *TableServiceAPI) CreateRoute(ctx context.Context, tableID string, route config.Route) error {
	args := m.Called(ctx, tableID, route)
	return args.Error(0)
}

func (m *TableServiceAPI) DeleteRoute(ctx context.Context, tableID, destination string) error {
	args := m.Called(ctx, tableID, destination)
	return args.Error(0)
}

// NewTableServiceAPI creates a new mock bound to the test's lifecycle.
func NewTableServiceAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *TableServiceAPI {
	m := &TableServiceAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
