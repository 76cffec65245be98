package firewall

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nalindak/aws-network-routing-project/internal/config"
)

func TestSuricataRule(t *testing.T) {
	tests := []struct {
		name string
		rule config.FirewallRule
		want string
	}{
		{
			name: "drop rule with ANY source",
			rule: config.FirewallRule{
				Name:        "block-x",
				Priority:    10,
				Action:      "DROP",
				Source:      "ANY",
				Destination: "203.0.113.5/32",
				Protocol:    "TCP",
			},
			want: `drop tcp any any -> 203.0.113.5/32 any (msg:"block-x"; sid:10;)`,
		},
		{
			name: "ALLOW renders as alert",
			rule: config.FirewallRule{
				Name:        "permit-web",
				Priority:    20,
				Action:      "ALLOW",
				Source:      "10.0.0.0/16",
				Destination: "ANY",
				Protocol:    "UDP",
			},
			want: `alert udp 10.0.0.0/16 any -> any any (msg:"permit-web"; sid:20;)`,
		},
		{
			name: "ALERT renders identically to ALLOW",
			rule: config.FirewallRule{
				Name:        "permit-web",
				Priority:    20,
				Action:      "ALERT",
				Source:      "10.0.0.0/16",
				Destination: "ANY",
				Protocol:    "UDP",
			},
			want: `alert udp 10.0.0.0/16 any -> any any (msg:"permit-web"; sid:20;)`,
		},
		{
			name: "description wins over name in msg",
			rule: config.FirewallRule{
				Name:        "r1",
				Priority:    1,
				Action:      "drop",
				Source:      "any",
				Destination: "any",
				Protocol:    "ANY",
				Description: "watch everything",
			},
			want: `drop any any any -> any any (msg:"watch everything"; sid:1;)`,
		},
		{
			name: "icmp protocol lowercased",
			rule: config.FirewallRule{
				Name:        "ping",
				Priority:    5,
				Action:      "ALERT",
				Source:      "192.168.1.0/24",
				Destination: "192.168.2.0/24",
				Protocol:    "ICMP",
			},
			want: `alert icmp 192.168.1.0/24 any -> 192.168.2.0/24 any (msg:"ping"; sid:5;)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuricataRule(tt.rule))
		})
	}
}

func TestRuleGroupName(t *testing.T) {
	assert.Equal(t, "block-x-rule-group", RuleGroupName("block-x"))
}

func TestRuleGroupARN(t *testing.T) {
	arn := RuleGroupARN("ap-southeast-4", "123456789012", "block-x-rule-group")
	assert.Equal(t, "arn:aws:network-firewall:ap-southeast-4:123456789012:stateful-rulegroup/block-x-rule-group", arn)
}
