package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Teardown returns the command deleting everything provision created.
func Teardown(opts *options) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Delete the cluster, its ingress rule and the IAM role",
		Long: `Delete the cluster without a final snapshot, revoke the ingress rule and
delete the IAM role. Resources that don't exist are skipped.

All data stored in the cluster is lost, pass --yes to confirm.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errors.New("teardown deletes the cluster and its data, pass --yes to confirm")
			}

			env, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer env.close()

			result, err := env.provisioner.Teardown(cmd.Context(), env.config.ClusterSpec())
			if printErr := printYAML(cmd.OutOrStdout(), result); printErr != nil && err == nil {
				err = printErr
			}

			return err
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Confirm the deletion")

	return cmd
}
