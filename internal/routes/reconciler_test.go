package routes_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/console"
	"github.com/nalindak/aws-network-routing-project/internal/routes"
	"github.com/nalindak/aws-network-routing-project/internal/routes/mocks"
)

func newTestReconciler(t *testing.T) (*routes.Reconciler, *mocks.TableServiceAPI, *bytes.Buffer) {
	svc := mocks.NewTableServiceAPI(t)
	var buf bytes.Buffer
	rec := routes.NewReconciler(svc, console.NewReporter(&buf), testLogger())
	return rec, svc, &buf
}

func TestApply_EmptyDocument(t *testing.T) {
	rec, _, _ := newTestReconciler(t)

	summary := rec.Apply(context.Background(), &config.RouteConfiguration{}, false)
	assert.Equal(t, "0/0", summary.String())
	assert.True(t, summary.AllSucceeded())
}

func TestApply_CreatesMissingRoute(t *testing.T) {
	rec, svc, buf := newTestReconciler(t)
	route := config.Route{Destination: "10.0.1.0/24", Target: "igw-abc"}

	svc.On("GetRouteTable", mock.Anything, "rtb-1").
		Return(&routes.RemoteRouteTable{ID: "rtb-1"}, true, nil)
	svc.On("CreateRoute", mock.Anything, "rtb-1", route).Return(nil)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-1",
		Routes:  []config.Route{route},
	}}}
	summary := rec.Apply(context.Background(), cfg, false)

	assert.Equal(t, "1/1", summary.String())
	assert.Contains(t, buf.String(), "✓ Created route 10.0.1.0/24 -> igw-abc")
}

func TestApply_ExistingDestinationSkipped(t *testing.T) {
	rec, svc, buf := newTestReconciler(t)

	svc.On("GetRouteTable", mock.Anything, "rtb-1").
		Return(&routes.RemoteRouteTable{
			ID:     "rtb-1",
			Routes: []routes.RemoteRoute{{Destination: "10.0.1.0/24", Target: "igw-abc", Kind: routes.KindGateway}},
		}, true, nil)
	// No CreateRoute expectation: issuing one would fail the mock.

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-1",
		Routes:  []config.Route{{Destination: "10.0.1.0/24", Target: "igw-abc"}},
	}}}
	summary := rec.Apply(context.Background(), cfg, false)

	assert.Equal(t, "1/1", summary.String(), "already-existing route counts as handled")
	assert.Contains(t, buf.String(), "⚠ Route 10.0.1.0/24 already exists")
}

func TestApply_TableNotFoundFailsGroup(t *testing.T) {
	rec, svc, buf := newTestReconciler(t)

	svc.On("GetRouteTable", mock.Anything, "rtb-missing").Return(nil, false, nil)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-missing",
		Routes:  []config.Route{{Destination: "10.0.1.0/24", Target: "igw-abc"}},
	}}}
	summary := rec.Apply(context.Background(), cfg, false)

	assert.Equal(t, "0/1", summary.String(), "route tables are never created, only populated")
	assert.Contains(t, buf.String(), "✗ Route table rtb-missing not found")
}

func TestApply_DryRunIssuesNoMutatingCalls(t *testing.T) {
	rec, svc, buf := newTestReconciler(t)

	svc.On("GetRouteTable", mock.Anything, "rtb-1").
		Return(&routes.RemoteRouteTable{
			ID:     "rtb-1",
			Routes: []routes.RemoteRoute{{Destination: "10.0.9.0/24", Target: "igw-old", Kind: routes.KindGateway}},
		}, true, nil)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-1",
		Routes: []config.Route{
			{Destination: "10.0.1.0/24", Target: "igw-abc"},
			{Destination: "10.0.9.0/24", Target: "igw-old"},
		},
	}}}
	summary := rec.Apply(context.Background(), cfg, true)

	assert.Equal(t, "1/1", summary.String(), "dry run reports the counts a clean live run would")
	assert.Contains(t, buf.String(), "→ Would create route: 10.0.1.0/24 -> igw-abc")
	assert.Contains(t, buf.String(), "⚠ Route 10.0.9.0/24 already exists")
	svc.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything, mock.Anything)
}

func TestApply_ProviderAlreadyExistsIsSuccess(t *testing.T) {
	rec, svc, buf := newTestReconciler(t)
	route := config.Route{Destination: "10.0.1.0/24", Target: "igw-abc"}

	svc.On("GetRouteTable", mock.Anything, "rtb-1").
		Return(&routes.RemoteRouteTable{ID: "rtb-1"}, true, nil)
	svc.On("CreateRoute", mock.Anything, "rtb-1", route).Return(routes.ErrRouteExists)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-1",
		Routes:  []config.Route{route},
	}}}
	summary := rec.Apply(context.Background(), cfg, false)

	assert.Equal(t, "1/1", summary.String())
	assert.Contains(t, buf.String(), "⚠ Route 10.0.1.0/24 already exists")
}

func TestApply_RouteFailureFailsTableButNotRun(t *testing.T) {
	rec, svc, _ := newTestReconciler(t)
	bad := config.Route{Destination: "10.0.1.0/24", Target: "igw-abc"}
	good := config.Route{Destination: "10.0.2.0/24", Target: "nat-def"}

	svc.On("GetRouteTable", mock.Anything, "rtb-1").
		Return(&routes.RemoteRouteTable{ID: "rtb-1"}, true, nil)
	svc.On("CreateRoute", mock.Anything, "rtb-1", bad).Return(errors.New("InvalidParameterValue"))
	svc.On("GetRouteTable", mock.Anything, "rtb-2").
		Return(&routes.RemoteRouteTable{ID: "rtb-2"}, true, nil)
	svc.On("CreateRoute", mock.Anything, "rtb-2", good).Return(nil)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{
		{TableID: "rtb-1", Routes: []config.Route{bad}},
		{TableID: "rtb-2", Routes: []config.Route{good}},
	}}
	summary := rec.Apply(context.Background(), cfg, false)

	assert.Equal(t, "1/2", summary.String(), "a failed table never aborts the remaining ones")
}

func TestValidate_RemoteTableMissing(t *testing.T) {
	rec, svc, buf := newTestReconciler(t)

	svc.On("GetRouteTable", mock.Anything, "rtb-missing").Return(nil, false, nil)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-missing",
		Routes:  []config.Route{{Destination: "10.0.1.0/24", Target: "igw-abc"}},
	}}}

	err := rec.Validate(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ Route table rtb-missing not found")
	svc.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidate_BadCIDRSkipsRemoteChecks(t *testing.T) {
	rec, svc, _ := newTestReconciler(t)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-1",
		Routes:  []config.Route{{Destination: "10.0.1.0/99", Target: "igw-abc"}},
	}}}

	err := rec.Validate(context.Background(), cfg)
	require.Error(t, err)
	svc.AssertNotCalled(t, "GetRouteTable", mock.Anything, mock.Anything)
}

func TestValidate_Passes(t *testing.T) {
	rec, svc, buf := newTestReconciler(t)

	svc.On("GetRouteTable", mock.Anything, "rtb-1").
		Return(&routes.RemoteRouteTable{ID: "rtb-1"}, true, nil)

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-1",
		Routes:  []config.Route{{Destination: "10.0.1.0/24", Target: "igw-abc"}},
	}}}

	require.NoError(t, rec.Validate(context.Background(), cfg))
	assert.Contains(t, buf.String(), "✓ Configuration validation passed")
}

func TestApply_DuplicateDestinationsBothAttempted(t *testing.T) {
	rec, svc, _ := newTestReconciler(t)
	route := config.Route{Destination: "10.0.1.0/24", Target: "igw-abc"}

	// The snapshot is taken once per table, so a duplicate in the same
	// document is attempted twice; the provider reports the second as
	// already existing.
	svc.On("GetRouteTable", mock.Anything, "rtb-1").
		Return(&routes.RemoteRouteTable{ID: "rtb-1"}, true, nil)
	svc.On("CreateRoute", mock.Anything, "rtb-1", route).Return(nil).Once()
	svc.On("CreateRoute", mock.Anything, "rtb-1", route).Return(routes.ErrRouteExists).Once()

	cfg := &config.RouteConfiguration{RouteTables: []config.RouteTable{{
		TableID: "rtb-1",
		Routes:  []config.Route{route, route},
	}}}
	summary := rec.Apply(context.Background(), cfg, false)

	assert.Equal(t, "1/1", summary.String())
}

func TestDisplayTable(t *testing.T) {
	rec, _, buf := newTestReconciler(t)

	table := config.RouteTable{
		TableID: "rtb-1",
		Routes: []config.Route{
			{Destination: "10.0.1.0/24", Target: "igw-abc", Description: "public"},
		},
	}
	require.NoError(t, rec.DisplayTable(table))
	out := buf.String()
	assert.Contains(t, out, "Route Table: rtb-1")
	assert.Contains(t, out, "igw-abc")
}
