package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/mock"
)

// STSAPI is a mock type for the STSAPI interface.
type STSAPI struct {
	mock.Mock
}

func (m *STSAPI) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	args := m.Called(ctx, params)
	var out *sts.GetCallerIdentityOutput
	if args.Get(0) != nil {
		out = args.Get(0).(*sts.GetCallerIdentityOutput)
	}
	return out, args.Error(1)
}

// NewSTSAPI creates a new mock bound to the test's lifecycle.
func NewSTSAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *STSAPI {
	m := &STSAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
