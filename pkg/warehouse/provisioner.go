package warehouse

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/redshift-provisioner/pkg/conditions"
	gserrors "github.com/redshift-provisioner/pkg/errors"
	"github.com/redshift-provisioner/pkg/key"
)

const (
	DefaultProbeTimeout = 5 * time.Minute
)

type Settings struct {
	Region string
	// RoleToAssume is an optional IAM role ARN assumed for every AWS call.
	RoleToAssume string
	// Bucket, when set, must be reachable before anything is created.
	Bucket       string
	Poll         WaitOptions
	ProbeTimeout time.Duration
}

// Provisioner runs the provisioning sequence: role, cluster, readiness, ingress, connectivity.
type Provisioner struct {
	awsClients AWSClients
	prober     Prober
	store      ResultStore
	settings   Settings
}

type clientSet struct {
	iam      IAMClient
	redshift RedshiftClient
	ec2      EC2Client
	identity IdentityClient
	storage  StorageClient
}

func NewProvisioner(awsClients AWSClients, prober Prober, store ResultStore, settings Settings) (*Provisioner, error) {
	if awsClients == nil {
		return nil, errors.New("awsClients can't be nil")
	}
	if prober == nil {
		return nil, errors.New("prober can't be nil")
	}
	if store == nil {
		return nil, errors.New("store can't be nil")
	}
	if settings.Region == "" {
		return nil, errors.New("region can't be empty")
	}
	if settings.ProbeTimeout <= 0 {
		settings.ProbeTimeout = DefaultProbeTimeout
	}

	return &Provisioner{
		awsClients: awsClients,
		prober:     prober,
		store:      store,
		settings:   settings,
	}, nil
}

// Provision creates the execution role and the cluster, waits for it, persists the endpoint
// and role ARN, opens the cluster port and checks the database answers. A role that already
// exists and a failure to open the port are tolerated; every other failure stops the run.
func (p *Provisioner) Provision(ctx context.Context, spec ClusterSpec, connection Endpoint) (Result, error) {
	logger := log.FromContext(ctx).WithValues("clusterIdentifier", spec.ClusterIdentifier)
	ctx = log.IntoContext(ctx, logger)
	result := Result{}

	clients, err := p.newClientSet()
	if err != nil {
		return result, errors.WithStack(err)
	}

	identity, err := p.preflight(ctx, clients)
	if err != nil {
		return result, errors.WithStack(err)
	}
	result.Identity = identity
	conditions.MarkReady(&result, conditions.PreflightPassed)

	roleARN, err := p.ensureRole(ctx, clients.iam, spec.RoleName)
	if err != nil {
		return result, errors.WithStack(err)
	}
	result.RoleARN = roleARN
	conditions.MarkReady(&result, conditions.RoleCreated)

	err = p.requestCluster(ctx, clients.redshift, spec, roleARN)
	if err != nil {
		return result, errors.WithStack(err)
	}
	conditions.MarkReady(&result, conditions.ClusterRequested)

	logger.Info("Waiting for cluster to become available", "timeout", p.settings.Poll.withDefaults().Timeout)
	start := time.Now()
	cluster, err := WaitForAvailable(ctx, clients.redshift, spec.ClusterIdentifier, p.settings.Poll)
	observeStep(conditions.ClusterAvailable, start, err)
	if err != nil {
		conditions.MarkNotReady(&result, conditions.ClusterAvailable, "NotAvailable", "%s", err)
		return result, errors.WithStack(err)
	}
	result.ClusterStatus = NormalizeStatus(cluster.Status)
	result.EndpointAddress = cluster.EndpointAddress
	result.EndpointPort = cluster.EndpointPort
	result.VPCId = cluster.VPCId
	if attached := cluster.FirstRoleARN(); attached != "" {
		result.RoleARN = attached
	}
	conditions.MarkReady(&result, conditions.ClusterAvailable)
	logger.Info("Cluster is available", "endpoint", cluster.EndpointAddress, "roleArn", result.RoleARN)

	start = time.Now()
	err = p.store.SaveResult(result)
	observeStep(conditions.ConfigPersisted, start, err)
	if err != nil {
		return result, errors.WithStack(err)
	}
	conditions.MarkReady(&result, conditions.ConfigPersisted)

	securityGroupId, err := p.openPorts(ctx, clients.ec2, cluster.VPCId, spec.Port)
	if err != nil {
		// The probe still runs: the port may already be reachable through another rule.
		logger.Error(err, "Failed to open cluster port, continuing", "port", spec.Port)
		result.IngressErr = err
		conditions.MarkNotReady(&result, conditions.PortsOpened, "AuthorizeIngressFailed", "%s", err)
	} else {
		result.SecurityGroupId = securityGroupId
		conditions.MarkReady(&result, conditions.PortsOpened)
	}

	endpoint := connection
	endpoint.Host = cluster.EndpointAddress
	if endpoint.Port == 0 {
		endpoint.Port = cluster.EndpointPort
	}
	err = p.Probe(ctx, endpoint)
	if err != nil {
		conditions.MarkNotReady(&result, conditions.Probed, "ConnectionFailed", "%s", err)
		return result, errors.WithStack(err)
	}
	conditions.MarkReady(&result, conditions.Probed)
	logger.Info("Connected to cluster")

	return result, nil
}

// Preflight checks the credentials and, when configured, the source bucket.
func (p *Provisioner) Preflight(ctx context.Context) (Identity, error) {
	clients, err := p.newClientSet()
	if err != nil {
		return Identity{}, errors.WithStack(err)
	}

	return p.preflight(ctx, clients)
}

func (p *Provisioner) Status(ctx context.Context, clusterIdentifier string) (string, error) {
	client, err := p.awsClients.NewRedshiftClient(p.settings.Region, p.settings.RoleToAssume)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return GetStatus(ctx, client, clusterIdentifier)
}

func (p *Provisioner) Describe(ctx context.Context, clusterIdentifier string) (Cluster, error) {
	client, err := p.awsClients.NewRedshiftClient(p.settings.Region, p.settings.RoleToAssume)
	if err != nil {
		return Cluster{}, errors.WithStack(err)
	}

	cluster, err := client.DescribeCluster(ctx, clusterIdentifier)
	if err != nil {
		return Cluster{}, errors.WithStack(err)
	}

	return cluster, nil
}

// Probe connects to the cluster, retrying while the prober reports retryable failures.
func (p *Provisioner) Probe(ctx context.Context, endpoint Endpoint) error {
	logger := log.FromContext(ctx).WithValues("host", endpoint.Host, "port", endpoint.Port)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, p.settings.ProbeTimeout)
	defer cancel()

	err := p.prober.Probe(ctx, endpoint)
	for err != nil && ctx.Err() == nil {
		retryAfter, retryable := gserrors.IsRetryable(err)
		if !retryable {
			break
		}
		if retryAfter <= 0 {
			retryAfter = time.Second
		}

		logger.Info("Cluster not reachable yet", "retryAfter", retryAfter, "error", err.Error())
		timer := time.NewTimer(retryAfter)
		select {
		case <-ctx.Done():
			timer.Stop()
			continue
		case <-timer.C:
		}

		err = p.prober.Probe(ctx, endpoint)
	}
	observeStep(conditions.Probed, start, err)
	if err != nil {
		return &ProbeFailedError{Host: endpoint.Host, Port: endpoint.Port, Err: err}
	}

	return nil
}

func (p *Provisioner) newClientSet() (clientSet, error) {
	region, role := p.settings.Region, p.settings.RoleToAssume

	iamClient, err := p.awsClients.NewIAMClient(region, role)
	if err != nil {
		return clientSet{}, errors.WithStack(err)
	}
	redshiftClient, err := p.awsClients.NewRedshiftClient(region, role)
	if err != nil {
		return clientSet{}, errors.WithStack(err)
	}
	ec2Client, err := p.awsClients.NewEC2Client(region, role)
	if err != nil {
		return clientSet{}, errors.WithStack(err)
	}
	identityClient, err := p.awsClients.NewIdentityClient(region, role)
	if err != nil {
		return clientSet{}, errors.WithStack(err)
	}
	storageClient, err := p.awsClients.NewStorageClient(region, role)
	if err != nil {
		return clientSet{}, errors.WithStack(err)
	}

	return clientSet{
		iam:      iamClient,
		redshift: redshiftClient,
		ec2:      ec2Client,
		identity: identityClient,
		storage:  storageClient,
	}, nil
}

func (p *Provisioner) preflight(ctx context.Context, clients clientSet) (identity Identity, err error) {
	defer func(start time.Time) { observeStep(conditions.PreflightPassed, start, err) }(time.Now())
	logger := log.FromContext(ctx)

	identity, err = clients.identity.GetCallerIdentity(ctx)
	if err != nil {
		return Identity{}, errors.WithStack(err)
	}
	logger.Info("Using AWS identity", "account", identity.Account, "arn", identity.ARN)

	if p.settings.Bucket == "" {
		return identity, nil
	}

	exists, err := clients.storage.BucketExists(ctx, p.settings.Bucket)
	if err != nil {
		return Identity{}, errors.WithStack(err)
	}
	if !exists {
		err = &BucketNotFoundError{Bucket: p.settings.Bucket}
		return Identity{}, err
	}

	return identity, nil
}

// ensureRole creates the execution role and grants it read-only S3 access. A role that
// already exists is reused so an interrupted run can be repeated.
func (p *Provisioner) ensureRole(ctx context.Context, client IAMClient, roleName string) (roleARN string, err error) {
	defer func(start time.Time) { observeStep(conditions.RoleCreated, start, err) }(time.Now())
	logger := log.FromContext(ctx).WithValues("roleName", roleName)

	logger.Info("Creating IAM role")
	err = client.CreateRole(ctx, roleName)
	if errors.Is(err, &RoleAlreadyExistsError{}) {
		logger.Info("IAM role already exists, continuing")
		err = nil
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	logger.Info("Attaching policy", "policyArn", key.S3ReadOnlyPolicyARN)
	err = client.AttachRolePolicy(ctx, roleName, key.S3ReadOnlyPolicyARN)
	if err != nil {
		return "", errors.WithStack(err)
	}

	roleARN, err = client.GetRoleARN(ctx, roleName)
	if err != nil {
		return "", errors.WithStack(err)
	}
	logger.Info("Got IAM role ARN", "roleArn", roleARN)

	return roleARN, nil
}

func (p *Provisioner) requestCluster(ctx context.Context, client RedshiftClient, spec ClusterSpec, roleARN string) (err error) {
	defer func(start time.Time) { observeStep(conditions.ClusterRequested, start, err) }(time.Now())
	logger := log.FromContext(ctx)

	logger.Info("Creating cluster", "clusterType", spec.ClusterType, "nodeType", spec.NodeType, "numberOfNodes", spec.NumberOfNodes)
	statusCode, err := client.CreateCluster(ctx, spec, roleARN)
	if errors.Is(err, &ClusterAlreadyExistsError{}) {
		logger.Info("Cluster already exists, waiting for it instead")
		return nil
	}
	if err != nil {
		err = &ClusterRejectedError{StatusCode: statusCode, Err: err}
		return err
	}

	logger.Info("Cluster creation request answered", "statusCode", statusCode)
	if !ClusterAccepted(statusCode) {
		err = &ClusterRejectedError{StatusCode: statusCode}
		return err
	}

	return nil
}

func (p *Provisioner) openPorts(ctx context.Context, client EC2Client, vpcId string, port int) (securityGroupId string, err error) {
	defer func(start time.Time) { observeStep(conditions.PortsOpened, start, err) }(time.Now())
	logger := log.FromContext(ctx).WithValues("vpcId", vpcId, "port", port)

	if vpcId == "" {
		err = errors.New("cluster has no VPC id")
		return "", err
	}

	logger.Info("Authorizing ingress on the default security group")
	securityGroupId, err = client.AuthorizeClusterIngress(ctx, vpcId, port)
	if err != nil {
		return "", errors.WithStack(err)
	}
	logger.Info("Ingress authorized", "securityGroupId", securityGroupId)

	return securityGroupId, nil
}
