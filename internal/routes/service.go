package routes

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/sirupsen/logrus"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	awserr "github.com/nalindak/aws-network-routing-project/internal/providers/aws"
)

// localRouteCIDR is excluded from the existing-destination snapshot; it is
// never managed by this tool.
const localRouteCIDR = "0.0.0.0/0"

// ErrRouteExists reports that the provider already has a route for the
// requested destination. Callers treat it as an idempotent success.
var ErrRouteExists = errors.New("route already exists")

// RemoteRoute is one route from the provider's live view of a table, with
// its target already classified.
type RemoteRoute struct {
	Destination string
	Target      string
	Kind        TargetKind
}

// RemoteRouteTable is the provider's live view of a route table.
type RemoteRouteTable struct {
	ID     string
	Routes []RemoteRoute
}

// Destinations returns the set of destination CIDRs present in the table.
func (t *RemoteRouteTable) Destinations() map[string]bool {
	set := make(map[string]bool, len(t.Routes))
	for _, r := range t.Routes {
		set[r.Destination] = true
	}
	return set
}

// Service handles interactions with EC2 route tables.
type Service struct {
	client EC2API
	log    *logrus.Logger
}

// NewService creates a Service with a provided client.
func NewService(client EC2API, log *logrus.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// NewServiceWithDefaultConfig creates a Service using the default AWS SDK
// configuration for the given region. Missing credentials surface here as a
// configuration error rather than at first API call.
func NewServiceWithDefaultConfig(ctx context.Context, region string, log *logrus.Logger) (*Service, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, awserr.NewError(awserr.ErrConfigurationError, "route-table", "", "AWS credentials not found", err)
	}
	return NewService(ec2.NewFromConfig(cfg), log), nil
}

// GetRouteTable fetches a fresh snapshot of a route table. Not-found is
// reported as (nil, false, nil). The default route is excluded from the
// snapshot, as are routes without an IPv4 destination CIDR.
func (s *Service) GetRouteTable(ctx context.Context, tableID string) (*RemoteRouteTable, bool, error) {
	resp, err := s.client.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
		RouteTableIds: []string{tableID},
	})
	if err != nil {
		if awserr.ErrorCode(err) == "InvalidRouteTableID.NotFound" {
			return nil, false, nil
		}
		return nil, false, awserr.Classify(err, "route-table", tableID)
	}
	if len(resp.RouteTables) == 0 {
		return nil, false, nil
	}

	table := &RemoteRouteTable{ID: tableID}
	for _, route := range resp.RouteTables[0].Routes {
		destination := aws.ToString(route.DestinationCidrBlock)
		if destination == "" || destination == localRouteCIDR {
			continue
		}
		target, kind := classifyRemote(route)
		table.Routes = append(table.Routes, RemoteRoute{
			Destination: destination,
			Target:      target,
			Kind:        kind,
		})
	}

	s.log.Debugf("route table %s: %d existing routes in snapshot", tableID, len(table.Routes))
	return table, true, nil
}

// CreateRoute adds a route to a table, selecting the next-hop parameter by
// the target identifier's prefix. A provider-reported duplicate comes back
// as ErrRouteExists.
func (s *Service) CreateRoute(ctx context.Context, tableID string, route config.Route) error {
	input := &ec2.CreateRouteInput{
		RouteTableId:         aws.String(tableID),
		DestinationCidrBlock: aws.String(route.Destination),
	}

	switch KindForTarget(route.Target) {
	case KindNATGateway:
		input.NatGatewayId = aws.String(route.Target)
	case KindVPCPeering:
		input.VpcPeeringConnectionId = aws.String(route.Target)
	case KindNetworkInterface:
		input.NetworkInterfaceId = aws.String(route.Target)
	default:
		input.GatewayId = aws.String(route.Target)
	}

	if _, err := s.client.CreateRoute(ctx, input); err != nil {
		if awserr.ErrorCode(err) == "RouteAlreadyExists" {
			return ErrRouteExists
		}
		return awserr.Classify(err, "route", route.Destination)
	}
	return nil
}

// DeleteRoute removes the route for a destination from a table.
func (s *Service) DeleteRoute(ctx context.Context, tableID, destination string) error {
	_, err := s.client.DeleteRoute(ctx, &ec2.DeleteRouteInput{
		RouteTableId:         aws.String(tableID),
		DestinationCidrBlock: aws.String(destination),
	})
	if err != nil {
		return awserr.Classify(err, "route", destination)
	}
	return nil
}
