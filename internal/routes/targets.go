package routes

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// TargetKind tags the next-hop variant of a route. Remote routes always carry
// an explicit kind, so no caller needs to probe optional fields.
type TargetKind string

const (
	KindGateway          TargetKind = "gateway"
	KindNATGateway       TargetKind = "nat"
	KindVPCPeering       TargetKind = "vpc-peering"
	KindNetworkInterface TargetKind = "network-interface"
	KindUnknown          TargetKind = "unknown"
)

// KindForTarget classifies a desired route's target by its identifier prefix.
// Unrecognized prefixes are treated as gateway identifiers.
func KindForTarget(target string) TargetKind {
	switch {
	case strings.HasPrefix(target, "igw-"):
		return KindGateway
	case strings.HasPrefix(target, "nat-"):
		return KindNATGateway
	case strings.HasPrefix(target, "pcx-"):
		return KindVPCPeering
	case strings.HasPrefix(target, "eni-"):
		return KindNetworkInterface
	default:
		return KindGateway
	}
}

// classifyRemote extracts the target identifier and kind from an EC2 route by
// checking which next-hop field the provider populated.
func classifyRemote(route ec2types.Route) (string, TargetKind) {
	switch {
	case route.GatewayId != nil && *route.GatewayId != "":
		return aws.ToString(route.GatewayId), KindGateway
	case route.NatGatewayId != nil && *route.NatGatewayId != "":
		return aws.ToString(route.NatGatewayId), KindNATGateway
	case route.VpcPeeringConnectionId != nil && *route.VpcPeeringConnectionId != "":
		return aws.ToString(route.VpcPeeringConnectionId), KindVPCPeering
	case route.NetworkInterfaceId != nil && *route.NetworkInterfaceId != "":
		return aws.ToString(route.NetworkInterfaceId), KindNetworkInterface
	default:
		return "unknown", KindUnknown
	}
}
