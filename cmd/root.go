// Package cmd defines the command line interface of the provisioner.
package cmd

import (
	"flag"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/redshift-provisioner/pkg/config"
	"github.com/redshift-provisioner/pkg/key"
)

type options struct {
	configPath  string
	metricsAddr string
	zapOptions  zap.Options
}

// Root returns the root command. Run without a subcommand it provisions the cluster.
func Root() *cobra.Command {
	opts := &options{
		zapOptions: zap.Options{
			Development: false,
			TimeEncoder: zapcore.RFC3339TimeEncoder,
		},
	}

	cmd := &cobra.Command{
		Use:   key.AppName,
		Short: "Provision an AWS Redshift cluster described by an INI file",
		Long: `Provision an AWS Redshift cluster described by an INI file.

Without a subcommand the cluster is provisioned: the execution role is created,
the cluster is launched and polled until it is available, its endpoint and role
ARN are written back to the configuration file, the cluster port is opened and
a database connection is attempted.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := newLogger(opts)
			log.SetLogger(logger)
			cmd.SetContext(log.IntoContext(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd, opts)
		},
	}

	goFlags := flag.NewFlagSet(key.AppName, flag.ContinueOnError)
	opts.zapOptions.BindFlags(goFlags)
	cmd.PersistentFlags().AddGoFlagSet(goFlags)
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&opts.metricsAddr, "metrics-bind-address", "", "The address the metric endpoint binds to, disabled when empty")

	cmd.AddCommand(Provision(opts))
	cmd.AddCommand(Preflight(opts))
	cmd.AddCommand(Status(opts))
	cmd.AddCommand(Describe(opts))
	cmd.AddCommand(Probe(opts))
	cmd.AddCommand(Teardown(opts))
	cmd.AddCommand(Version())

	return cmd
}

func newLogger(opts *options) logr.Logger {
	return zap.New(zap.UseFlagOptions(&opts.zapOptions)).WithName(key.AppName)
}
