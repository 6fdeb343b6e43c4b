package warehouse

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/wait"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	DefaultPollInterval    = 30 * time.Second
	DefaultPollTimeout     = 20 * time.Minute
	DefaultMaxPollInterval = 2 * time.Minute

	pollFactor = 1.5
	pollJitter = 0.1
)

type WaitOptions struct {
	// Interval is the delay before the second status check. It grows by pollFactor on every attempt.
	Interval    time.Duration
	MaxInterval time.Duration
	Timeout     time.Duration
}

func (o WaitOptions) withDefaults() WaitOptions {
	if o.Interval <= 0 {
		o.Interval = DefaultPollInterval
	}
	if o.MaxInterval <= 0 {
		o.MaxInterval = DefaultMaxPollInterval
	}
	if o.MaxInterval < o.Interval {
		o.MaxInterval = o.Interval
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultPollTimeout
	}

	return o
}

func (o WaitOptions) delay() wait.DelayFunc {
	return wait.Backoff{
		Duration: o.Interval,
		Factor:   pollFactor,
		Jitter:   pollJitter,
		Steps:    int(o.Timeout/o.Interval) + 1,
		Cap:      o.MaxInterval,
	}.DelayFunc()
}

// GetStatus returns the lower-cased status of the cluster.
func GetStatus(ctx context.Context, client RedshiftClient, clusterIdentifier string) (string, error) {
	cluster, err := client.DescribeCluster(ctx, clusterIdentifier)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return NormalizeStatus(cluster.Status), nil
}

// CheckClusterCreation reports whether the cluster is available right now.
func CheckClusterCreation(ctx context.Context, client RedshiftClient, clusterIdentifier string) (bool, error) {
	status, err := GetStatus(ctx, client, clusterIdentifier)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return IsAvailable(status), nil
}

// WaitForAvailable polls the cluster until it reports "available" and returns its descriptor.
// It returns a ClusterFailedError as soon as the cluster enters a terminal status and a
// ClusterNotAvailableError when the timeout elapses first.
func WaitForAvailable(ctx context.Context, client RedshiftClient, clusterIdentifier string, opts WaitOptions) (Cluster, error) {
	logger := log.FromContext(ctx)
	opts = opts.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	var cluster Cluster
	lastStatus := ""
	err := opts.delay().Until(ctx, true, true, func(ctx context.Context) (bool, error) {
		current, err := client.DescribeCluster(ctx, clusterIdentifier)
		if err != nil {
			logger.Info("Failed to describe cluster, retrying", "error", err.Error())
			return false, nil
		}

		lastStatus = NormalizeStatus(current.Status)
		switch {
		case IsAvailable(lastStatus):
			cluster = current
			return true, nil
		case IsFailed(lastStatus):
			return false, &ClusterFailedError{Status: lastStatus}
		default:
			logger.Info("Cluster not available yet", "status", lastStatus)
			return false, nil
		}
	})
	if errors.Is(err, &ClusterFailedError{}) {
		return Cluster{}, err
	}
	if err != nil {
		return Cluster{}, &ClusterNotAvailableError{LastStatus: lastStatus, Timeout: opts.Timeout, Err: err}
	}

	return cluster, nil
}

// WaitForDeletion polls the cluster until the provider no longer knows about it.
func WaitForDeletion(ctx context.Context, client RedshiftClient, clusterIdentifier string, opts WaitOptions) error {
	logger := log.FromContext(ctx)
	opts = opts.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	lastStatus := ""
	err := opts.delay().Until(ctx, true, true, func(ctx context.Context) (bool, error) {
		current, err := client.DescribeCluster(ctx, clusterIdentifier)
		if errors.Is(err, &ClusterNotFoundError{}) {
			return true, nil
		}
		if err != nil {
			logger.Info("Failed to describe cluster, retrying", "error", err.Error())
			return false, nil
		}

		lastStatus = NormalizeStatus(current.Status)
		logger.Info("Cluster not deleted yet", "status", lastStatus)
		return false, nil
	})
	if err != nil {
		return errors.Wrapf(err, "cluster %q was not deleted within %s, last status %q", clusterIdentifier, opts.Timeout, lastStatus)
	}

	return nil
}
