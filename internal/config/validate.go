package config

import (
	"fmt"
	"net"
	"strings"
)

var validActions = []string{"ALLOW", "DROP", "ALERT"}

var validProtocols = []string{"TCP", "UDP", "ANY", "ICMP"}

// ValidationError reports the first field that failed validation. Validation
// is all-or-nothing: a single bad field aborts the whole run before any
// remote mutation is attempted.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// ValidateFirewall checks every rule's action and protocol against the
// supported sets. Returned warnings flag suspicious but non-fatal shapes
// (duplicate policy names).
func ValidateFirewall(cfg *FirewallConfiguration) ([]string, error) {
	var warnings []string
	seen := make(map[string]bool)

	for _, policy := range cfg.Policies {
		if seen[policy.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate policy name %q in document", policy.Name))
		}
		seen[policy.Name] = true

		for _, rule := range policy.Rules {
			if !IsValidAction(rule.Action) {
				return warnings, &ValidationError{Field: "action", Value: rule.Action, Message: "must be one of ALLOW, DROP, ALERT"}
			}
			if !IsValidProtocol(rule.Protocol) {
				return warnings, &ValidationError{Field: "protocol", Value: rule.Protocol, Message: "must be one of TCP, UDP, ANY, ICMP"}
			}
		}
	}
	return warnings, nil
}

// ValidateRoutes checks every route's destination CIDR. Remote existence of
// the referenced route tables is checked separately by the reconciler, since
// it needs the provider. Duplicate table ids and duplicate destinations
// within one table are warned about but not rejected.
func ValidateRoutes(cfg *RouteConfiguration) ([]string, error) {
	var warnings []string
	seenTables := make(map[string]bool)

	for _, table := range cfg.RouteTables {
		if seenTables[table.TableID] {
			warnings = append(warnings, fmt.Sprintf("duplicate route table %q in document", table.TableID))
		}
		seenTables[table.TableID] = true

		seenDests := make(map[string]bool)
		for _, route := range table.Routes {
			if !IsValidCIDR(route.Destination) {
				return warnings, &ValidationError{Field: "CIDR", Value: route.Destination, Message: "must be valid IPv4 CIDR notation"}
			}
			if seenDests[route.Destination] {
				warnings = append(warnings, fmt.Sprintf("duplicate destination %q in route table %q", route.Destination, table.TableID))
			}
			seenDests[route.Destination] = true
		}
	}
	return warnings, nil
}

// IsValidAction reports whether action is a supported rule action, case
// insensitively.
func IsValidAction(action string) bool {
	return containsFold(validActions, action)
}

// IsValidProtocol reports whether protocol is a supported protocol, case
// insensitively.
func IsValidProtocol(protocol string) bool {
	return containsFold(validProtocols, protocol)
}

// IsValidCIDR reports whether cidr is syntactically valid IPv4 CIDR notation.
// The prefix length is required: a bare address like "10.0.0.1" is rejected
// rather than read as a /32.
func IsValidCIDR(cidr string) bool {
	ip, _, err := net.ParseCIDR(cidr)
	if err != nil {
		return false
	}
	return ip.To4() != nil
}

func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}
