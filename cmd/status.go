package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Status(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the lower-cased status of the cluster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer env.close()

			status, err := env.provisioner.Status(cmd.Context(), env.config.Warehouse.ClusterIdentifier)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), status)
			return err
		},
	}
}
