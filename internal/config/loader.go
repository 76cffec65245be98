package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadError reports a fatal problem reading or decoding a configuration file.
// It is distinct from validation errors so callers can exit before any remote
// interaction happens.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load configuration %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadFirewall reads and decodes a firewall configuration file.
func LoadFirewall(path string) (*FirewallConfiguration, error) {
	var cfg FirewallConfiguration
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}

	for i, policy := range cfg.Policies {
		if policy.Name == "" {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("policies[%d]: missing required field 'name'", i)}
		}
		for j, rule := range policy.Rules {
			if err := requireRuleFields(rule); err != nil {
				return nil, &LoadError{Path: path, Err: fmt.Errorf("policy %q rules[%d]: %w", policy.Name, j, err)}
			}
		}
	}
	return &cfg, nil
}

// LoadRoutes reads and decodes a route table configuration file.
func LoadRoutes(path string) (*RouteConfiguration, error) {
	var cfg RouteConfiguration
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}

	for i, table := range cfg.RouteTables {
		if table.TableID == "" {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("route_tables[%d]: missing required field 'table_id'", i)}
		}
		for j, route := range table.Routes {
			if route.Destination == "" {
				return nil, &LoadError{Path: path, Err: fmt.Errorf("route table %q routes[%d]: missing required field 'destination'", table.TableID, j)}
			}
			if route.Target == "" {
				return nil, &LoadError{Path: path, Err: fmt.Errorf("route table %q routes[%d]: missing required field 'target'", table.TableID, j)}
			}
		}
	}
	return &cfg, nil
}

// loadYAML decodes a YAML file into out, rejecting unknown keys so typos in a
// document fail loudly instead of silently dropping rules.
func loadYAML(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return &LoadError{Path: path, Err: fmt.Errorf("invalid YAML: %w", err)}
	}
	return nil
}

func requireRuleFields(rule FirewallRule) error {
	switch {
	case rule.Name == "":
		return fmt.Errorf("missing required field 'name'")
	case rule.Action == "":
		return fmt.Errorf("missing required field 'action'")
	case rule.Source == "":
		return fmt.Errorf("missing required field 'source'")
	case rule.Destination == "":
		return fmt.Errorf("missing required field 'destination'")
	case rule.Protocol == "":
		return fmt.Errorf("missing required field 'protocol'")
	}
	return nil
}
