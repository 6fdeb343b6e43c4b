package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/redshift-provisioner/pkg/key"
	"github.com/redshift-provisioner/pkg/warehouse"
)

type EC2 struct {
	client *ec2.Client
}

// AuthorizeClusterIngress opens port to any IPv4 address on the default security group of the VPC
// and returns the id of that group. It won't return an error if the rule already exists. Errors can
// be found here https://docs.aws.amazon.com/AWSEC2/latest/APIReference/errors-overview.html#CommonErrors
func (a *EC2) AuthorizeClusterIngress(ctx context.Context, vpcId string, port int) (string, error) {
	securityGroup, err := a.getSecurityGroupByName(ctx, vpcId, key.DefaultSecurityGroupName)
	if err != nil {
		return "", errors.WithStack(err)
	}
	securityGroupId := awssdk.ToString(securityGroup.GroupId)

	_, err = a.client.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:    awssdk.String(securityGroupId),
		IpProtocol: awssdk.String(key.IngressProtocol),
		CidrIp:     awssdk.String(key.AnyIPv4CIDR),
		FromPort:   awssdk.Int32(int32(port)),
		ToPort:     awssdk.Int32(int32(port)),
	})
	if HasErrorCode(err, ErrInvalidPermissionDuplicate) {
		return securityGroupId, nil
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	return securityGroupId, nil
}

// RevokeClusterIngress removes the rule added by AuthorizeClusterIngress. A missing group or rule is not an error.
func (a *EC2) RevokeClusterIngress(ctx context.Context, vpcId string, port int) error {
	securityGroup, err := a.getSecurityGroupByName(ctx, vpcId, key.DefaultSecurityGroupName)
	if errors.Is(err, &warehouse.SecurityGroupNotFoundError{}) {
		return nil
	}
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = a.client.RevokeSecurityGroupIngress(ctx, &ec2.RevokeSecurityGroupIngressInput{
		GroupId:    securityGroup.GroupId,
		IpProtocol: awssdk.String(key.IngressProtocol),
		CidrIp:     awssdk.String(key.AnyIPv4CIDR),
		FromPort:   awssdk.Int32(int32(port)),
		ToPort:     awssdk.Int32(int32(port)),
	})
	if HasErrorCode(err, ErrInvalidPermissionNotFound, ErrInvalidGroupNotFound) {
		return nil
	}

	return errors.WithStack(err)
}

// getSecurityGroupByName matches the name client side as well, some EC2 compatible endpoints ignore the group-name filter.
func (a *EC2) getSecurityGroupByName(ctx context.Context, vpcId, groupName string) (ec2types.SecurityGroup, error) {
	response, err := a.client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2types.Filter{
			{
				Name:   awssdk.String("vpc-id"),
				Values: []string{vpcId},
			},
			{
				Name:   awssdk.String("group-name"),
				Values: []string{groupName},
			},
		},
	})
	if err != nil {
		return ec2types.SecurityGroup{}, errors.WithStack(err)
	}

	securityGroup, ok := lo.Find(response.SecurityGroups, func(group ec2types.SecurityGroup) bool {
		return awssdk.ToString(group.GroupName) == groupName
	})
	if !ok {
		return ec2types.SecurityGroup{}, &warehouse.SecurityGroupNotFoundError{}
	}

	return securityGroup, nil
}
