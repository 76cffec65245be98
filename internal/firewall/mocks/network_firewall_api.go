package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/networkfirewall"
	"github.com/stretchr/testify/mock"
)

// NetworkFirewallAPI is a mock type for the NetworkFirewallAPI interface.
type NetworkFirewallAPI struct {
	mock.Mock
}

func (m *NetworkFirewallAPI) DescribeFirewallPolicy(ctx context.Context, params *networkfirewall.DescribeFirewallPolicyInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.DescribeFirewallPolicyOutput, error) {
	args := m.Called(ctx, params)
	var out *networkfirewall.DescribeFirewallPolicyOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*networkfirewall.DescribeFirewallPolicyOutput)
	}
	return out, args.Error(1)
}

func (m *NetworkFirewallAPI) CreateFirewallPolicy(ctx context.Context, params *networkfirewall.CreateFirewallPolicyInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.CreateFirewallPolicyOutput, error) {
	args := m.Called(ctx, params)
	var out *networkfirewall.CreateFirewallPolicyOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*networkfirewall.CreateFirewallPolicyOutput)
	}
	return out, args.Error(1)
}

func (m *NetworkFirewallAPI) UpdateFirewallPolicy(ctx context.Context, params *networkfirewall.UpdateFirewallPolicyInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.UpdateFirewallPolicyOutput, error) {
	args := m.Called(ctx, params)
	var out *networkfirewall.UpdateFirewallPolicyOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*networkfirewall.UpdateFirewallPolicyOutput)
	}
	return out, args.Error(1)
}

func (m *NetworkFirewallAPI) CreateRuleGroup(ctx context.Context, params *networkfirewall.CreateRuleGroupInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.CreateRuleGroupOutput, error) {
	args := m.Called(ctx, params)
	var out *networkfirewall.CreateRuleGroupOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*networkfirewall.CreateRuleGroupOutput)
	}
	return out, args.Error(1)
}

func (m *NetworkFirewallAPI) ListFirewallPolicies(ctx context.Context, params *networkfirewall.ListFirewallPoliciesInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.ListFirewallPoliciesOutput, error) {
	args := m.Called(ctx, params)
	var out *networkfirewall.ListFirewallPoliciesOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*networkfirewall.ListFirewallPoliciesOutput)
	}
	return out, args.Error(1)
}

// NewNetworkFirewallAPI creates a new mock bound to the test's lifecycle.
func NewNetworkFirewallAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *NetworkFirewallAPI {
	m := &NetworkFirewallAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
