package firewall

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/networkfirewall"
	nftypes "github.com/aws/aws-sdk-go-v2/service/networkfirewall/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/sirupsen/logrus"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/console"
	awserr "github.com/nalindak/aws-network-routing-project/internal/providers/aws"
)

const (
	// fallbackAccountID is substituted when the STS identity lookup fails.
	// The lookup must never abort a run.
	fallbackAccountID = "123456789012"

	forwardToSFE = "aws:forward_to_sfe"
)

// PolicySummary is one entry from the remote policy listing.
type PolicySummary struct {
	Name string
	ARN  string
}

// Service handles interactions with AWS Network Firewall policies and
// stateful rule groups.
type Service struct {
	client  NetworkFirewallAPI
	sts     STSAPI
	region  string
	console console.Reporter
	log     *logrus.Logger

	accountID string
}

// NewService creates a Service with provided clients.
func NewService(client NetworkFirewallAPI, stsClient STSAPI, region string, reporter console.Reporter, log *logrus.Logger) *Service {
	return &Service{
		client:  client,
		sts:     stsClient,
		region:  region,
		console: reporter,
		log:     log,
	}
}

// NewServiceWithDefaultConfig creates a Service using the default AWS SDK
// configuration for the given region. Missing credentials surface here as a
// configuration error rather than at first API call.
func NewServiceWithDefaultConfig(ctx context.Context, region string, reporter console.Reporter, log *logrus.Logger) (*Service, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, awserr.NewError(awserr.ErrConfigurationError, "network-firewall", "", "AWS credentials not found", err)
	}
	return NewService(networkfirewall.NewFromConfig(cfg), sts.NewFromConfig(cfg), region, reporter, log), nil
}

// GetPolicy checks whether a firewall policy exists. Not-found is reported
// as (false, nil); any other provider failure is returned as an error.
func (s *Service) GetPolicy(ctx context.Context, name string) (bool, error) {
	_, err := s.client.DescribeFirewallPolicy(ctx, &networkfirewall.DescribeFirewallPolicyInput{
		FirewallPolicyName: aws.String(name),
	})
	if err != nil {
		var notFound *nftypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, awserr.Classify(err, "firewall-policy", name)
	}
	return true, nil
}

// CreatePolicy creates a firewall policy referencing freshly created rule
// groups, one per rule.
func (s *Service) CreatePolicy(ctx context.Context, policy config.FirewallPolicy) error {
	refs := s.buildRuleGroupReferences(ctx, policy.Rules)

	_, err := s.client.CreateFirewallPolicy(ctx, &networkfirewall.CreateFirewallPolicyInput{
		FirewallPolicyName: aws.String(policy.Name),
		FirewallPolicy:     policyDocument(refs),
		Description:        aws.String(policy.Description),
	})
	if err != nil {
		return awserr.Classify(err, "firewall-policy", policy.Name)
	}
	return nil
}

// UpdatePolicy resubmits the full rule set of an existing policy. The whole
// rule set is replaced in one operation; there is no per-rule diff.
func (s *Service) UpdatePolicy(ctx context.Context, policy config.FirewallPolicy) error {
	desc, err := s.client.DescribeFirewallPolicy(ctx, &networkfirewall.DescribeFirewallPolicyInput{
		FirewallPolicyName: aws.String(policy.Name),
	})
	if err != nil {
		return awserr.Classify(err, "firewall-policy", policy.Name)
	}

	refs := s.buildRuleGroupReferences(ctx, policy.Rules)

	_, err = s.client.UpdateFirewallPolicy(ctx, &networkfirewall.UpdateFirewallPolicyInput{
		UpdateToken:        desc.UpdateToken,
		FirewallPolicyName: aws.String(policy.Name),
		FirewallPolicy:     policyDocument(refs),
		Description:        aws.String(policy.Description),
	})
	if err != nil {
		return awserr.Classify(err, "firewall-policy", policy.Name)
	}
	return nil
}

// ListPolicies returns the name and ARN of every remote firewall policy.
func (s *Service) ListPolicies(ctx context.Context) ([]PolicySummary, error) {
	out, err := s.client.ListFirewallPolicies(ctx, &networkfirewall.ListFirewallPoliciesInput{})
	if err != nil {
		return nil, awserr.Classify(err, "firewall-policy", "")
	}

	summaries := make([]PolicySummary, 0, len(out.FirewallPolicies))
	for _, p := range out.FirewallPolicies {
		summaries = append(summaries, PolicySummary{
			Name: aws.ToString(p.Name),
			ARN:  aws.ToString(p.Arn),
		})
	}
	return summaries, nil
}

// AccountID resolves the caller's account id via STS, memoizing success.
// Failures fall back to a fixed placeholder and never propagate.
func (s *Service) AccountID(ctx context.Context) string {
	if s.accountID != "" {
		return s.accountID
	}

	out, err := s.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil || out.Account == nil {
		s.log.WithError(err).Debug("account id lookup failed, using fallback")
		return fallbackAccountID
	}

	s.accountID = aws.ToString(out.Account)
	return s.accountID
}

// buildRuleGroupReferences creates one stateful rule group per rule and
// returns the ARN references the policy will carry. A reference is appended
// even when the group create fails, so the policy submit surfaces the
// provider's own error for the missing group.
func (s *Service) buildRuleGroupReferences(ctx context.Context, rules []config.FirewallRule) []nftypes.StatefulRuleGroupReference {
	account := s.AccountID(ctx)

	refs := make([]nftypes.StatefulRuleGroupReference, 0, len(rules))
	for _, rule := range rules {
		groupName := RuleGroupName(rule.Name)
		if err := s.createRuleGroup(ctx, groupName, rule); err != nil {
			s.console.Failf("Failed to create rule group %s: %v", groupName, err)
		} else {
			s.console.Successf("Created rule group: %s", groupName)
		}
		refs = append(refs, nftypes.StatefulRuleGroupReference{
			ResourceArn: aws.String(RuleGroupARN(s.region, account, groupName)),
		})
	}
	return refs
}

func (s *Service) createRuleGroup(ctx context.Context, name string, rule config.FirewallRule) error {
	rulesString := SuricataRule(rule)
	s.log.Debugf("rule group %s: %s", name, rulesString)

	_, err := s.client.CreateRuleGroup(ctx, &networkfirewall.CreateRuleGroupInput{
		RuleGroupName: aws.String(name),
		Type:          nftypes.RuleGroupTypeStateful,
		Capacity:      aws.Int32(ruleGroupCapacity),
		RuleGroup: &nftypes.RuleGroup{
			RulesSource: &nftypes.RulesSource{
				RulesString: aws.String(rulesString),
			},
		},
	})
	if err != nil {
		return awserr.Classify(err, "rule-group", name)
	}
	return nil
}

func policyDocument(refs []nftypes.StatefulRuleGroupReference) *nftypes.FirewallPolicy {
	return &nftypes.FirewallPolicy{
		StatelessDefaultActions:         []string{forwardToSFE},
		StatelessFragmentDefaultActions: []string{forwardToSFE},
		StatefulRuleGroupReferences:     refs,
	}
}
