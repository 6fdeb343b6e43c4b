package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/pkg/errors"

	"github.com/redshift-provisioner/pkg/warehouse"
)

type STS struct {
	client *sts.Client
}

func (s *STS) GetCallerIdentity(ctx context.Context) (warehouse.Identity, error) {
	response, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return warehouse.Identity{}, errors.WithStack(err)
	}

	return warehouse.Identity{
		Account: awssdk.ToString(response.Account),
		ARN:     awssdk.ToString(response.Arn),
		UserID:  awssdk.ToString(response.UserId),
	}, nil
}
