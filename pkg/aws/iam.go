package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/pkg/errors"

	"github.com/redshift-provisioner/pkg/key"
	"github.com/redshift-provisioner/pkg/warehouse"
)

type IAM struct {
	client *iam.Client
}

// CreateRole creates the role the cluster assumes. It returns a RoleAlreadyExistsError
// when a role with that name exists.
func (a *IAM) CreateRole(ctx context.Context, roleName string) error {
	policyDocument, err := key.AssumeRolePolicyDocument()
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = a.client.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 awssdk.String(roleName),
		Path:                     awssdk.String(key.RolePath),
		Description:              awssdk.String(key.RoleDescription),
		AssumeRolePolicyDocument: awssdk.String(policyDocument),
	})
	if HasErrorCode(err, ErrEntityAlreadyExists) {
		return &warehouse.RoleAlreadyExistsError{RoleName: roleName}
	}

	return errors.WithStack(err)
}

func (a *IAM) AttachRolePolicy(ctx context.Context, roleName, policyARN string) error {
	_, err := a.client.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  awssdk.String(roleName),
		PolicyArn: awssdk.String(policyARN),
	})

	return errors.WithStack(err)
}

func (a *IAM) GetRoleARN(ctx context.Context, roleName string) (string, error) {
	response, err := a.client.GetRole(ctx, &iam.GetRoleInput{
		RoleName: awssdk.String(roleName),
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	if response.Role == nil || response.Role.Arn == nil {
		return "", errors.Errorf("role %q has no ARN", roleName)
	}

	return *response.Role.Arn, nil
}

// DetachRolePolicy won't return an error if the role or the attachment is already gone.
func (a *IAM) DetachRolePolicy(ctx context.Context, roleName, policyARN string) error {
	_, err := a.client.DetachRolePolicy(ctx, &iam.DetachRolePolicyInput{
		RoleName:  awssdk.String(roleName),
		PolicyArn: awssdk.String(policyARN),
	})
	if HasErrorCode(err, ErrNoSuchEntity) {
		return nil
	}

	return errors.WithStack(err)
}

func (a *IAM) DeleteRole(ctx context.Context, roleName string) error {
	_, err := a.client.DeleteRole(ctx, &iam.DeleteRoleInput{
		RoleName: awssdk.String(roleName),
	})
	if HasErrorCode(err, ErrNoSuchEntity) {
		return nil
	}

	return errors.WithStack(err)
}
