package config

// FirewallRule is a single stateful rule inside a policy document.
type FirewallRule struct {
	Name        string `yaml:"name"`
	Priority    int    `yaml:"priority"`
	Action      string `yaml:"action"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Protocol    string `yaml:"protocol"`
	Description string `yaml:"description,omitempty"`
}

// FirewallPolicy groups rules under a named firewall policy.
type FirewallPolicy struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Rules       []FirewallRule `yaml:"rules"`
}

// FirewallConfiguration is the root of a firewall document.
type FirewallConfiguration struct {
	Policies []FirewallPolicy `yaml:"policies"`
}

// Route is a single desired route inside a route table document.
type Route struct {
	Destination string `yaml:"destination"`
	Target      string `yaml:"target"`
	TargetType  string `yaml:"target_type,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// RouteTable holds the desired routes for one existing VPC route table.
type RouteTable struct {
	TableID     string  `yaml:"table_id"`
	Description string  `yaml:"description,omitempty"`
	Routes      []Route `yaml:"routes"`
}

// RouteConfiguration is the root of a route table document.
type RouteConfiguration struct {
	RouteTables []RouteTable `yaml:"route_tables"`
}
