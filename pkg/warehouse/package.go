package warehouse

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type AWSClients interface {
	NewIAMClient(region, roleToAssume string) (IAMClient, error)
	NewRedshiftClient(region, roleToAssume string) (RedshiftClient, error)
	NewEC2Client(region, roleToAssume string) (EC2Client, error)
	NewIdentityClient(region, roleToAssume string) (IdentityClient, error)
	NewStorageClient(region, roleToAssume string) (StorageClient, error)
}

//counterfeiter:generate . IAMClient
type IAMClient interface {
	CreateRole(ctx context.Context, roleName string) error
	AttachRolePolicy(ctx context.Context, roleName, policyARN string) error
	GetRoleARN(ctx context.Context, roleName string) (string, error)
	DetachRolePolicy(ctx context.Context, roleName, policyARN string) error
	DeleteRole(ctx context.Context, roleName string) error
}

//counterfeiter:generate . RedshiftClient
type RedshiftClient interface {
	// CreateCluster returns the HTTP status code of the accepted request.
	CreateCluster(ctx context.Context, spec ClusterSpec, roleARN string) (int, error)
	DescribeCluster(ctx context.Context, clusterIdentifier string) (Cluster, error)
	DeleteCluster(ctx context.Context, clusterIdentifier string) error
}

//counterfeiter:generate . EC2Client
type EC2Client interface {
	AuthorizeClusterIngress(ctx context.Context, vpcId string, port int) (string, error)
	RevokeClusterIngress(ctx context.Context, vpcId string, port int) error
}

//counterfeiter:generate . IdentityClient
type IdentityClient interface {
	GetCallerIdentity(ctx context.Context) (Identity, error)
}

//counterfeiter:generate . StorageClient
type StorageClient interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

//counterfeiter:generate . Prober
type Prober interface {
	Probe(ctx context.Context, endpoint Endpoint) error
}

//counterfeiter:generate . ResultStore
type ResultStore interface {
	SaveResult(result Result) error
}
