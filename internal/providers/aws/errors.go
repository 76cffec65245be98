package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

type ErrorCategory string

// Error categories for classifying failures from the EC2 and Network
// Firewall APIs.
const (
	// ErrResourceNotFound is returned when a requested AWS resource doesn't exist
	ErrResourceNotFound ErrorCategory = "resource_not_found"

	// ErrResourceConflict is returned when a resource already exists or is in use
	ErrResourceConflict ErrorCategory = "resource_conflict"

	// ErrPermissionDenied is returned when AWS API access is denied
	ErrPermissionDenied ErrorCategory = "permission_denied"

	// ErrThrottling is returned when AWS API throttles the request
	ErrThrottling ErrorCategory = "request_throttled"

	// ErrConfigurationError is returned when there's an issue with AWS credentials or configuration
	ErrConfigurationError ErrorCategory = "configuration_error"

	// ErrInvalidInput is returned when invalid input is provided
	ErrInvalidInput ErrorCategory = "invalid_input"

	// ErrInternalError is returned for unexpected internal errors
	ErrInternalError ErrorCategory = "internal_error"
)

// Error carries the category and resource context of a failed AWS operation.
type Error struct {
	Category     ErrorCategory
	ResourceType string
	ResourceID   string
	Message      string
	Underlying   error
}

func (e *Error) Error() string {
	if e.ResourceID != "" {
		return fmt.Sprintf("%s: %s [resource: %s/%s]", e.Category, e.Message, e.ResourceType, e.ResourceID)
	}
	if e.ResourceType != "" {
		return fmt.Sprintf("%s: %s [resource type: %s]", e.Category, e.Message, e.ResourceType)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError creates a new AWS error with the specified details
func NewError(category ErrorCategory, resourceType, resourceID, message string, underlying error) *Error {
	return &Error{
		Category:     category,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr.Category == category
	}
	return false
}

// ErrorCode extracts the provider error code from an API error, or "" when
// the error did not come from the AWS API.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// Classify maps a raw SDK error onto a categorized *Error. Provider error
// codes are authoritative; message text is a fallback for transport-level
// failures that never reached the API.
func Classify(err error, resourceType, resourceID string) *Error {
	if err == nil {
		return nil
	}

	switch ErrorCode(err) {
	case "ResourceNotFoundException", "InvalidRouteTableID.NotFound", "InvalidRoute.NotFound":
		return NewError(ErrResourceNotFound, resourceType, resourceID, "Resource not found", err)

	case "RouteAlreadyExists", "InsufficientCapacityException", "ResourceOwnedException":
		return NewError(ErrResourceConflict, resourceType, resourceID, "Resource conflict", err)

	case "UnauthorizedOperation", "AuthFailure", "InvalidClientTokenId", "AccessDeniedException":
		return NewError(ErrPermissionDenied, resourceType, resourceID, "Access denied", err)

	case "RequestLimitExceeded", "ThrottlingException":
		return NewError(ErrThrottling, resourceType, resourceID, "Request throttled", err)

	case "InvalidParameterValue", "InvalidRequestException", "ValidationError":
		return NewError(ErrInvalidInput, resourceType, resourceID, "Invalid input", err)
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "no such host") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "timeout"):
		return NewError(ErrInternalError, resourceType, resourceID, "Network error while accessing AWS API", err)

	case strings.Contains(errMsg, "could not find region") ||
		strings.Contains(errMsg, "failed to retrieve credentials") ||
		strings.Contains(errMsg, "no ec2 imds role found") ||
		strings.Contains(errMsg, "static credentials are empty"):
		return NewError(ErrConfigurationError, resourceType, resourceID, "AWS credentials not found or misconfigured", err)

	default:
		return NewError(ErrInternalError, resourceType, resourceID, "Internal error occurred", err)
	}
}
