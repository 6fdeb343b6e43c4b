package aws

import (
	stderrors "errors"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/samber/lo"
)

// API error codes handled by the clients in this package.
const (
	ErrEntityAlreadyExists        = "EntityAlreadyExists"
	ErrNoSuchEntity               = "NoSuchEntity"
	ErrClusterAlreadyExists       = "ClusterAlreadyExists"
	ErrClusterNotFound            = "ClusterNotFound"
	ErrInvalidPermissionDuplicate = "InvalidPermission.Duplicate"
	ErrInvalidPermissionNotFound  = "InvalidPermission.NotFound"
	ErrInvalidGroupNotFound       = "InvalidGroup.NotFound"
	ErrNotFound                   = "NotFound"
	ErrNoSuchBucket               = "NoSuchBucket"
)

// HasErrorCode reports whether err is an AWS API error with one of the given codes.
func HasErrorCode(err error, codes ...string) bool {
	code, ok := ErrorCode(err)
	if !ok {
		return false
	}

	return lo.Contains(codes, code)
}

func ErrorCode(err error) (string, bool) {
	var apiErr smithy.APIError
	if err == nil || !stderrors.As(err, &apiErr) {
		return "", false
	}

	return apiErr.ErrorCode(), true
}

// statusCode returns the HTTP status of a failed request, or zero when no response was received.
func statusCode(err error) int {
	var responseErr *awshttp.ResponseError
	if stderrors.As(err, &responseErr) {
		return responseErr.HTTPStatusCode()
	}

	return 0
}
