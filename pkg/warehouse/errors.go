package warehouse

import (
	"fmt"
	"reflect"
	"time"
)

type RoleAlreadyExistsError struct {
	error
	RoleName string
}

func (e *RoleAlreadyExistsError) Error() string {
	return fmt.Sprintf("role %q already exists", e.RoleName)
}

func (e *RoleAlreadyExistsError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type ClusterAlreadyExistsError struct {
	error
	ClusterIdentifier string
}

func (e *ClusterAlreadyExistsError) Error() string {
	return fmt.Sprintf("cluster %q already exists", e.ClusterIdentifier)
}

func (e *ClusterAlreadyExistsError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type ClusterNotFoundError struct {
	error
}

func (e *ClusterNotFoundError) Error() string {
	return "cluster was not found"
}

func (e *ClusterNotFoundError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type SecurityGroupNotFoundError struct {
	error
}

func (e *SecurityGroupNotFoundError) Error() string {
	return "security group was not found"
}

func (e *SecurityGroupNotFoundError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

// ClusterRejectedError is returned when the create request was not accepted.
// StatusCode is zero when the request failed before a response was received.
type ClusterRejectedError struct {
	StatusCode int
	Err        error
}

func (e *ClusterRejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cluster creation was rejected: %s", e.Err)
	}

	return fmt.Sprintf("cluster creation was rejected with status code %d", e.StatusCode)
}

func (e *ClusterRejectedError) Unwrap() error {
	return e.Err
}

func (e *ClusterRejectedError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type ClusterNotAvailableError struct {
	LastStatus string
	Timeout    time.Duration
	Err        error
}

func (e *ClusterNotAvailableError) Error() string {
	return fmt.Sprintf("cluster did not become available within %s, last status %q", e.Timeout, e.LastStatus)
}

func (e *ClusterNotAvailableError) Unwrap() error {
	return e.Err
}

func (e *ClusterNotAvailableError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type ClusterFailedError struct {
	Status string
}

func (e *ClusterFailedError) Error() string {
	return fmt.Sprintf("cluster entered failed status %q", e.Status)
}

func (e *ClusterFailedError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type ProbeFailedError struct {
	Host string
	Port int
	Err  error
}

func (e *ProbeFailedError) Error() string {
	return fmt.Sprintf("could not connect to %s:%d: %s", e.Host, e.Port, e.Err)
}

func (e *ProbeFailedError) Unwrap() error {
	return e.Err
}

func (e *ProbeFailedError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}

type BucketNotFoundError struct {
	error
	Bucket string
}

func (e *BucketNotFoundError) Error() string {
	return fmt.Sprintf("bucket %q was not found or is not accessible", e.Bucket)
}

func (e *BucketNotFoundError) Is(target error) bool {
	return reflect.TypeOf(target) == reflect.TypeOf(e)
}
