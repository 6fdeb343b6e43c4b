package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/redshift-provisioner/pkg/aws"
	"github.com/redshift-provisioner/pkg/key"
)

// version is set at build time with -ldflags "-X github.com/redshift-provisioner/cmd.version=...".
var version = "dev"

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// The logger isn't needed here.
		PersistentPreRun: func(*cobra.Command, []string) {},
		RunE: func(cmd *cobra.Command, _ []string) error {
			commit := aws.CurrentCommit
			if commit == "" {
				commit = "unknown"
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, %s)\n", key.AppName, version, commit, runtime.Version())
			return err
		},
	}
}
