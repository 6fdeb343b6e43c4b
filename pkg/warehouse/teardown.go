package warehouse

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/redshift-provisioner/pkg/conditions"
	"github.com/redshift-provisioner/pkg/key"
)

// Teardown removes everything Provision created. Resources that are already gone are skipped,
// so it can be run repeatedly.
func (p *Provisioner) Teardown(ctx context.Context, spec ClusterSpec) (Result, error) {
	logger := log.FromContext(ctx).WithValues("clusterIdentifier", spec.ClusterIdentifier)
	ctx = log.IntoContext(ctx, logger)
	result := Result{}

	clients, err := p.newClientSet()
	if err != nil {
		return result, errors.WithStack(err)
	}

	vpcId, err := p.deleteCluster(ctx, clients.redshift, spec.ClusterIdentifier)
	if err != nil {
		return result, errors.WithStack(err)
	}
	result.VPCId = vpcId
	conditions.MarkReady(&result, conditions.ClusterDeleted)

	if vpcId != "" {
		logger.Info("Revoking cluster ingress", "vpcId", vpcId, "port", spec.Port)
		start := time.Now()
		err = clients.ec2.RevokeClusterIngress(ctx, vpcId, spec.Port)
		observeStep(conditions.IngressRevoked, start, err)
		if err != nil {
			return result, errors.WithStack(err)
		}
	}
	conditions.MarkReady(&result, conditions.IngressRevoked)

	err = p.deleteRole(ctx, clients.iam, spec.RoleName)
	if err != nil {
		return result, errors.WithStack(err)
	}
	conditions.MarkReady(&result, conditions.RoleDeleted)

	return result, nil
}

// deleteCluster returns the VPC the cluster lived in, or an empty string when there was no cluster.
func (p *Provisioner) deleteCluster(ctx context.Context, client RedshiftClient, clusterIdentifier string) (vpcId string, err error) {
	defer func(start time.Time) { observeStep(conditions.ClusterDeleted, start, err) }(time.Now())
	logger := log.FromContext(ctx)

	cluster, err := client.DescribeCluster(ctx, clusterIdentifier)
	if errors.Is(err, &ClusterNotFoundError{}) {
		logger.Info("Cluster was not found, skipping deletion")
		return "", nil
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	if NormalizeStatus(cluster.Status) != "deleting" {
		logger.Info("Deleting cluster")
		err = client.DeleteCluster(ctx, clusterIdentifier)
		if err != nil {
			return "", errors.WithStack(err)
		}
	}

	logger.Info("Waiting for cluster to be deleted")
	err = WaitForDeletion(ctx, client, clusterIdentifier, p.settings.Poll)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return cluster.VPCId, nil
}

func (p *Provisioner) deleteRole(ctx context.Context, client IAMClient, roleName string) (err error) {
	defer func(start time.Time) { observeStep(conditions.RoleDeleted, start, err) }(time.Now())
	logger := log.FromContext(ctx).WithValues("roleName", roleName)

	logger.Info("Detaching policy", "policyArn", key.S3ReadOnlyPolicyARN)
	err = client.DetachRolePolicy(ctx, roleName, key.S3ReadOnlyPolicyARN)
	if err != nil {
		return errors.WithStack(err)
	}

	logger.Info("Deleting IAM role")
	err = client.DeleteRole(ctx, roleName)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
