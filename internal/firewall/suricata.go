package firewall

import (
	"fmt"
	"strings"

	"github.com/nalindak/aws-network-routing-project/internal/config"
)

const (
	ruleGroupSuffix   = "-rule-group"
	ruleGroupCapacity = 100
	arnPartition      = "aws"
)

// suricataActions maps configuration actions to emitted Suricata actions.
// ALLOW renders as alert, not pass, so allowed traffic is indistinguishable
// from ALERT traffic in the generated rules.
var suricataActions = map[string]string{
	"ALLOW": "alert",
	"DROP":  "drop",
	"ALERT": "alert",
}

// SuricataRule renders one rule as a line of Suricata rule text:
//
//	<action> <protocol> <source> any -> <destination> any (msg:"..."; sid:<priority>;)
//
// ANY tokens in source, destination and protocol lower to the literal "any";
// the message falls back to the rule name when no description is set.
func SuricataRule(rule config.FirewallRule) string {
	action, ok := suricataActions[strings.ToUpper(rule.Action)]
	if !ok {
		action = "alert"
	}

	msg := rule.Description
	if msg == "" {
		msg = rule.Name
	}

	return fmt.Sprintf("%s %s %s any -> %s any (msg:%q; sid:%d;)",
		action,
		strings.ToLower(rule.Protocol),
		lowerAny(rule.Source),
		lowerAny(rule.Destination),
		msg,
		rule.Priority,
	)
}

// RuleGroupName derives the rule group name for a rule.
func RuleGroupName(ruleName string) string {
	return ruleName + ruleGroupSuffix
}

// RuleGroupARN constructs the ARN a policy uses to reference a stateful rule
// group.
func RuleGroupARN(region, accountID, groupName string) string {
	return fmt.Sprintf("arn:%s:network-firewall:%s:%s:stateful-rulegroup/%s",
		arnPartition, region, accountID, groupName)
}

func lowerAny(endpoint string) string {
	if strings.EqualFold(endpoint, "ANY") {
		return "any"
	}
	return endpoint
}
