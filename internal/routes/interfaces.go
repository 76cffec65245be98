package routes

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/nalindak/aws-network-routing-project/internal/config"
)

// EC2API defines the interface for the EC2 operations we need to mock
//
//go:generate mockery --name=EC2API --output=./mocks
type EC2API interface {
	DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error)
	CreateRoute(ctx context.Context, params *ec2.CreateRouteInput, optFns ...func(*ec2.Options)) (*ec2.CreateRouteOutput, error)
	DeleteRoute(ctx context.Context, params *ec2.DeleteRouteInput, optFns ...func(*ec2.Options)) (*ec2.DeleteRouteOutput, error)
}

// TableServiceAPI is the remote accessor boundary the reconciler depends on.
// GetRouteTable reports not-found via the bool, not an error; CreateRoute
// reports a remotely pre-existing route as ErrRouteExists.
//
//go:generate mockery --name=TableServiceAPI --output=./mocks
type TableServiceAPI interface {
	GetRouteTable(ctx context.Context, tableID string) (*RemoteRouteTable, bool, error)
	CreateRoute(ctx context.Context, tableID string, route config.Route) error
	DeleteRoute(ctx context.Context, tableID, destination string) error
}
