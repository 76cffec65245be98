package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/firewall"
)

// PolicyServiceAPI is a mock type for the PolicyServiceAPI interface.
type PolicyServiceAPI struct {
	mock.Mock
}

func (m *PolicyServiceAPI) GetPolicy(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *PolicyServiceAPI) CreatePolicy(ctx context.Context, policy config.FirewallPolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *PolicyServiceAPI) UpdatePolicy(ctx context.Context, policy config.FirewallPolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *PolicyServiceAPI) ListPolicies(ctx context.Context) ([]firewall.PolicySummary, error) {
	args := m.Called(ctx)
	var out []firewall.PolicySummary
	if args.Get(0) != nil {
		out = args.Get(0).([]firewall.PolicySummary)
	}
	return out, args.Error(1)
}

// NewPolicyServiceAPI creates a new mock bound to the test's lifecycle.
func NewPolicyServiceAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *PolicyServiceAPI {
	m := &PolicyServiceAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
