package firewall

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/console"
	"github.com/nalindak/aws-network-routing-project/internal/reconcile"
)

// Reconciler converges remote firewall policies toward a desired document.
// Policies are processed strictly sequentially in document order; a failed
// policy never aborts the remaining ones.
type Reconciler struct {
	svc     PolicyServiceAPI
	console console.Reporter
	log     *logrus.Logger
}

// NewReconciler creates a reconciler over the given accessor.
func NewReconciler(svc PolicyServiceAPI, reporter console.Reporter, log *logrus.Logger) *Reconciler {
	return &Reconciler{
		svc:     svc,
		console: reporter,
		log:     log,
	}
}

// Validate checks every rule's fields. Validation is all-or-nothing and runs
// before any mutation.
func (r *Reconciler) Validate(cfg *config.FirewallConfiguration) error {
	r.console.Sectionf("Validating configuration...")

	warnings, err := config.ValidateFirewall(cfg)
	for _, w := range warnings {
		r.console.Warnf("%s", w)
	}
	if err != nil {
		r.console.Failf("%v", err)
		return err
	}

	r.console.Successf("Configuration validation passed")
	return nil
}

// Apply converges each policy in the document. In dry-run mode every intent
// is reported and counted as success without issuing mutating calls.
func (r *Reconciler) Apply(ctx context.Context, cfg *config.FirewallConfiguration, dryRun bool) reconcile.Summary {
	r.console.Sectionf("Applying firewall configuration...")
	if dryRun {
		r.console.Warnf("DRY RUN MODE - No changes will be made")
	}

	var summary reconcile.Summary
	for _, policy := range cfg.Policies {
		r.console.Sectionf("Processing policy: %s", policy.Name)
		summary.Record(r.applyPolicy(ctx, policy, dryRun))
	}

	r.console.Sectionf("Summary:")
	r.console.Infof("Successfully processed %s policies", summary.String())
	return summary
}

func (r *Reconciler) applyPolicy(ctx context.Context, policy config.FirewallPolicy, dryRun bool) bool {
	exists, err := r.svc.GetPolicy(ctx, policy.Name)
	if err != nil {
		r.console.Failf("Failed to look up firewall policy %s: %v", policy.Name, err)
		r.log.WithError(err).Errorf("policy lookup failed: %s", policy.Name)
		return false
	}

	if dryRun {
		if exists {
			r.console.Planf("Would update policy: %s", policy.Name)
		} else {
			r.console.Planf("Would create policy: %s", policy.Name)
		}
		return true
	}

	if exists {
		if err := r.svc.UpdatePolicy(ctx, policy); err != nil {
			r.console.Failf("Failed to update firewall policy %s: %v", policy.Name, err)
			return false
		}
		r.console.Successf("Updated firewall policy: %s", policy.Name)
		return true
	}

	if err := r.svc.CreatePolicy(ctx, policy); err != nil {
		r.console.Failf("Failed to create firewall policy %s: %v", policy.Name, err)
		return false
	}
	r.console.Successf("Created firewall policy: %s", policy.Name)
	return true
}

// DisplayPolicy renders the desired rules of one policy as a table.
func (r *Reconciler) DisplayPolicy(policy config.FirewallPolicy) error {
	rows := make([][]string, 0, len(policy.Rules))
	for _, rule := range policy.Rules {
		rows = append(rows, []string{
			strconv.Itoa(rule.Priority),
			rule.Action,
			rule.Source,
			rule.Destination,
			rule.Protocol,
			rule.Description,
		})
	}
	return r.console.Table(
		fmt.Sprintf("Firewall Policy: %s", policy.Name),
		[]string{"PRIORITY", "ACTION", "SOURCE", "DESTINATION", "PROTOCOL", "DESCRIPTION"},
		rows,
	)
}

// ListPolicies fetches and renders the remote policy listing. This bypasses
// configuration entirely.
func (r *Reconciler) ListPolicies(ctx context.Context) error {
	r.console.Sectionf("Listing firewall policies...")

	policies, err := r.svc.ListPolicies(ctx)
	if err != nil {
		r.console.Failf("Failed to list firewall policies: %v", err)
		return err
	}
	if len(policies) == 0 {
		r.console.Warnf("No firewall policies found")
		return nil
	}

	rows := make([][]string, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, []string{p.Name, p.ARN})
	}
	return r.console.Table("Firewall Policies", []string{"NAME", "ARN"}, rows)
}
