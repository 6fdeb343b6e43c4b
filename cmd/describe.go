package cmd

import (
	"github.com/spf13/cobra"
)

// Describe returns the command printing the cluster properties as YAML.
func Describe(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the cluster properties",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer env.close()

			cluster, err := env.provisioner.Describe(cmd.Context(), env.config.Warehouse.ClusterIdentifier)
			if err != nil {
				return err
			}

			return printYAML(cmd.OutOrStdout(), cluster)
		},
	}
}
