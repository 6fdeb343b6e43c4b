package cmd

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Provision returns the command creating the role and the cluster and checking it accepts connections.
func Provision(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "provision",
		Short: "Create the IAM role and the cluster, then verify connectivity",
		Long: `Create the IAM role and the Redshift cluster, then verify connectivity.

An IAM role that already exists is reused. A cluster with the same identifier
is waited for instead of being created again. When the cluster port can't be
opened the error is reported and the connection is attempted anyway.

Examples:
  # Provision using dwh.cfg in the current directory
  redshift-provisioner provision

  # Use another configuration file and expose metrics while running
  redshift-provisioner provision -c prod.cfg --metrics-bind-address :8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd, opts)
		},
	}
}

func runProvision(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)

	env, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer env.close()

	result, err := env.provisioner.Provision(ctx, env.config.ClusterSpec(), env.config.Endpoint())
	if result.IngressErr != nil {
		logger.Info("Cluster port was not opened, the cluster may not be reachable from outside its VPC", "error", result.IngressErr.Error())
	}
	if printErr := printYAML(cmd.OutOrStdout(), result); printErr != nil {
		logger.Error(printErr, "Failed to print result")
	}

	return err
}
