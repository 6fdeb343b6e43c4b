package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Probe returns the command connecting to the host stored in the [CLUSTER] section.
func Probe(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Connect to the cluster using the [CLUSTER] section",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer env.close()

			endpoint := env.config.Endpoint()
			if endpoint.Host == "" {
				return errors.Errorf("CLUSTER.HOST is empty in %s, provision the cluster first", opts.configPath)
			}

			err = env.provisioner.Probe(cmd.Context(), endpoint)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s:%d\n", endpoint.Host, endpoint.Port)
			return err
		},
	}
}
