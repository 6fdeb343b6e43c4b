package cmd

import (
	"github.com/spf13/cobra"
)

func Preflight(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check the AWS credentials and the configured S3 bucket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer env.close()

			identity, err := env.provisioner.Preflight(cmd.Context())
			if err != nil {
				return err
			}

			return printYAML(cmd.OutOrStdout(), identity)
		},
	}
}
