package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/stretchr/testify/mock"
)

// EC2API is a mock type for the EC2API interface.
type EC2API struct {
	mock.Mock
}

func (m *EC2API) DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
	args := m.Called(ctx, params)
	var out *ec2.DescribeRouteTablesOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*ec2.DescribeRouteTablesOutput)
	}
	return out, args.Error(1)
}

func (m *EC2API) CreateRoute(ctx context.Context, params *ec2.CreateRouteInput, optFns ...func(*ec2.Options)) (*ec2.CreateRouteOutput, error) {
	args := m.Called(ctx, params)
	var out *ec2.CreateRouteOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*ec2.CreateRouteOutput)
	}
	return out, args.Error(1)
}

func (m *EC2API) DeleteRoute(ctx context.Context, params *ec2.DeleteRouteInput, optFns ...func(*ec2.Options)) (*ec2.DeleteRouteOutput, error) {
	args := m.Called(ctx, params)
	var out *ec2.DeleteRouteOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*ec2.DeleteRouteOutput)
	}
	return out, args.Error(1)
}

// NewEC2API creates a new mock bound to the test's lifecycle.
func NewEC2API(t interface {
	mock.TestingT
	Cleanup(func())
}) *EC2API {
	m := &EC2API{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
