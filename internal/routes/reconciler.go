package routes

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/console"
	"github.com/nalindak/aws-network-routing-project/internal/reconcile"
)

// Reconciler converges VPC route tables toward a desired document. Tables
// are never created, only populated; a failed table never aborts the
// remaining ones.
type Reconciler struct {
	svc     TableServiceAPI
	console console.Reporter
	log     *logrus.Logger
}

// NewReconciler creates a reconciler over the given accessor.
func NewReconciler(svc TableServiceAPI, reporter console.Reporter, log *logrus.Logger) *Reconciler {
	return &Reconciler{
		svc:     svc,
		console: reporter,
		log:     log,
	}
}

// Validate checks destination CIDR syntax and that every referenced route
// table exists remotely. All-or-nothing: any failure aborts the run before
// any mutation is attempted.
func (r *Reconciler) Validate(ctx context.Context, cfg *config.RouteConfiguration) error {
	r.console.Sectionf("Validating configuration...")

	warnings, err := config.ValidateRoutes(cfg)
	for _, w := range warnings {
		r.console.Warnf("%s", w)
	}
	if err != nil {
		r.console.Failf("%v", err)
		return err
	}

	for _, table := range cfg.RouteTables {
		_, found, err := r.svc.GetRouteTable(ctx, table.TableID)
		if err != nil {
			r.console.Failf("Failed to look up route table %s: %v", table.TableID, err)
			return err
		}
		if !found {
			r.console.Failf("Route table %s not found", table.TableID)
			return fmt.Errorf("route table %s not found", table.TableID)
		}
	}

	r.console.Successf("Configuration validation passed")
	return nil
}

// Apply converges each route table in the document. The existing-destination
// snapshot is fetched once per table and not refreshed mid-loop. In dry-run
// mode every create intent is reported and counted as success without
// issuing mutating calls.
func (r *Reconciler) Apply(ctx context.Context, cfg *config.RouteConfiguration, dryRun bool) reconcile.Summary {
	var summary reconcile.Summary
	for _, table := range cfg.RouteTables {
		summary.Record(r.applyTable(ctx, table, dryRun))
	}

	r.console.Sectionf("Summary:")
	r.console.Infof("Successfully processed %s route tables", summary.String())
	return summary
}

func (r *Reconciler) applyTable(ctx context.Context, table config.RouteTable, dryRun bool) bool {
	r.console.Sectionf("Processing route table: %s", table.TableID)

	remote, found, err := r.svc.GetRouteTable(ctx, table.TableID)
	if err != nil {
		r.console.Failf("Failed to look up route table %s: %v", table.TableID, err)
		r.log.WithError(err).Errorf("route table lookup failed: %s", table.TableID)
		return false
	}
	if !found {
		r.console.Failf("Route table %s not found", table.TableID)
		return false
	}

	if dryRun {
		r.console.Warnf("DRY RUN MODE - No changes will be made")
	}

	existing := remote.Destinations()

	var routeSummary reconcile.Summary
	for _, route := range table.Routes {
		routeSummary.Record(r.applyRoute(ctx, table.TableID, route, existing, dryRun))
	}

	r.console.Successf("Successfully processed %d routes", routeSummary.Succeeded)
	return routeSummary.AllSucceeded()
}

func (r *Reconciler) applyRoute(ctx context.Context, tableID string, route config.Route, existing map[string]bool, dryRun bool) bool {
	if existing[route.Destination] {
		r.console.Warnf("Route %s already exists", route.Destination)
		return true
	}

	if dryRun {
		r.console.Planf("Would create route: %s -> %s", route.Destination, route.Target)
		return true
	}

	err := r.svc.CreateRoute(ctx, tableID, route)
	switch {
	case err == nil:
		r.console.Successf("Created route %s -> %s", route.Destination, route.Target)
		return true
	case errors.Is(err, ErrRouteExists):
		r.console.Warnf("Route %s already exists", route.Destination)
		return true
	default:
		r.console.Failf("Failed to create route %s: %v", route.Destination, err)
		return false
	}
}

// DisplayTable renders the desired routes of one table.
func (r *Reconciler) DisplayTable(table config.RouteTable) error {
	rows := make([][]string, 0, len(table.Routes))
	for _, route := range table.Routes {
		rows = append(rows, []string{route.Destination, route.Target, route.Description})
	}
	return r.console.Table(
		fmt.Sprintf("Route Table: %s", table.TableID),
		[]string{"DESTINATION", "TARGET", "DESCRIPTION"},
		rows,
	)
}
