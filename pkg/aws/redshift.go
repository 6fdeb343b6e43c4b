package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	redshifttypes "github.com/aws/aws-sdk-go-v2/service/redshift/types"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/redshift-provisioner/pkg/key"
	"github.com/redshift-provisioner/pkg/warehouse"
)

type Redshift struct {
	client *redshift.Client
}

// CreateCluster sends a single create request and returns the HTTP status code it was answered with.
// The node count is only sent for multi-node clusters.
func (r *Redshift) CreateCluster(ctx context.Context, spec warehouse.ClusterSpec, roleARN string) (int, error) {
	input := &redshift.CreateClusterInput{
		ClusterIdentifier:  awssdk.String(spec.ClusterIdentifier),
		ClusterType:        awssdk.String(spec.ClusterType),
		NodeType:           awssdk.String(spec.NodeType),
		DBName:             awssdk.String(spec.DBName),
		MasterUsername:     awssdk.String(spec.MasterUsername),
		MasterUserPassword: awssdk.String(spec.MasterPassword),
		Port:               awssdk.Int32(int32(spec.Port)),
		IamRoles:           []string{roleARN},
	}
	if key.IsMultiNode(spec.ClusterType) {
		input.NumberOfNodes = awssdk.Int32(int32(spec.NumberOfNodes))
	}

	response, err := r.client.CreateCluster(ctx, input)
	if HasErrorCode(err, ErrClusterAlreadyExists) {
		return statusCode(err), &warehouse.ClusterAlreadyExistsError{ClusterIdentifier: spec.ClusterIdentifier}
	}
	if err != nil {
		return statusCode(err), errors.WithStack(err)
	}

	return rawStatusCode(response.ResultMetadata), nil
}

func (r *Redshift) DescribeCluster(ctx context.Context, clusterIdentifier string) (warehouse.Cluster, error) {
	response, err := r.client.DescribeClusters(ctx, &redshift.DescribeClustersInput{
		ClusterIdentifier: awssdk.String(clusterIdentifier),
	})
	if HasErrorCode(err, ErrClusterNotFound) {
		return warehouse.Cluster{}, &warehouse.ClusterNotFoundError{}
	}
	if err != nil {
		return warehouse.Cluster{}, errors.WithStack(err)
	}

	if len(response.Clusters) < 1 {
		return warehouse.Cluster{}, &warehouse.ClusterNotFoundError{}
	}

	return toCluster(response.Clusters[0]), nil
}

// DeleteCluster deletes the cluster without a final snapshot. A missing cluster is not an error.
func (r *Redshift) DeleteCluster(ctx context.Context, clusterIdentifier string) error {
	_, err := r.client.DeleteCluster(ctx, &redshift.DeleteClusterInput{
		ClusterIdentifier:        awssdk.String(clusterIdentifier),
		SkipFinalClusterSnapshot: awssdk.Bool(true),
	})
	if HasErrorCode(err, ErrClusterNotFound) {
		return nil
	}

	return errors.WithStack(err)
}

func toCluster(cluster redshifttypes.Cluster) warehouse.Cluster {
	result := warehouse.Cluster{
		Identifier:     awssdk.ToString(cluster.ClusterIdentifier),
		NodeType:       awssdk.ToString(cluster.NodeType),
		Status:         awssdk.ToString(cluster.ClusterStatus),
		MasterUsername: awssdk.ToString(cluster.MasterUsername),
		DBName:         awssdk.ToString(cluster.DBName),
		NumberOfNodes:  int(awssdk.ToInt32(cluster.NumberOfNodes)),
		VPCId:          awssdk.ToString(cluster.VpcId),
		IAMRoleARNs: lo.Map(cluster.IamRoles, func(role redshifttypes.ClusterIamRole, _ int) string {
			return awssdk.ToString(role.IamRoleArn)
		}),
	}
	if cluster.Endpoint != nil {
		result.EndpointAddress = awssdk.ToString(cluster.Endpoint.Address)
		result.EndpointPort = int(awssdk.ToInt32(cluster.Endpoint.Port))
	}

	return result
}

func rawStatusCode(metadata middleware.Metadata) int {
	response, ok := awsmiddleware.GetRawResponse(metadata).(*smithyhttp.Response)
	if !ok {
		return 0
	}

	return response.StatusCode
}
