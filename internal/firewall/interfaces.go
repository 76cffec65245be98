package firewall

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/networkfirewall"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/nalindak/aws-network-routing-project/internal/config"
)

// NetworkFirewallAPI defines the interface for the Network Firewall operations we need to mock
//
//go:generate mockery --name=NetworkFirewallAPI --output=./mocks
type NetworkFirewallAPI interface {
	DescribeFirewallPolicy(ctx context.Context, params *networkfirewall.DescribeFirewallPolicyInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.DescribeFirewallPolicyOutput, error)
	CreateFirewallPolicy(ctx context.Context, params *networkfirewall.CreateFirewallPolicyInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.CreateFirewallPolicyOutput, error)
	UpdateFirewallPolicy(ctx context.Context, params *networkfirewall.UpdateFirewallPolicyInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.UpdateFirewallPolicyOutput, error)
	CreateRuleGroup(ctx context.Context, params *networkfirewall.CreateRuleGroupInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.CreateRuleGroupOutput, error)
	ListFirewallPolicies(ctx context.Context, params *networkfirewall.ListFirewallPoliciesInput, optFns ...func(*networkfirewall.Options)) (*networkfirewall.ListFirewallPoliciesOutput, error)
}

// STSAPI defines the interface for the identity lookup we need to mock
//
//go:generate mockery --name=STSAPI --output=./mocks
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// PolicyServiceAPI is the remote accessor boundary the reconciler depends on.
// GetPolicy reports not-found as (false, nil) rather than an error.
//
//go:generate mockery --name=PolicyServiceAPI --output=./mocks
type PolicyServiceAPI interface {
	GetPolicy(ctx context.Context, name string) (bool, error)
	CreatePolicy(ctx context.Context, policy config.FirewallPolicy) error
	UpdatePolicy(ctx context.Context, policy config.FirewallPolicy) error
	ListPolicies(ctx context.Context) ([]PolicySummary, error)
}
