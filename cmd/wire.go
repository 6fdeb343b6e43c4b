package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
	"sigs.k8s.io/yaml"

	"github.com/redshift-provisioner/pkg/aws"
	"github.com/redshift-provisioner/pkg/config"
	"github.com/redshift-provisioner/pkg/probe"
	"github.com/redshift-provisioner/pkg/warehouse"
)

type environment struct {
	config      config.Config
	provisioner *warehouse.Provisioner
	close       func()
}

// setup loads the configuration and wires the provisioner. close must be called once the command is done.
func setup(ctx context.Context, opts *options) (*environment, error) {
	logger := log.FromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	meterProvider, shutdownMeterProvider, err := aws.NewMeterProvider(metrics.Registry)
	if err != nil {
		return nil, err
	}

	clientOptions := []aws.Option{aws.WithMeterProvider(meterProvider)}
	if cfg.AWS.Key != "" {
		clientOptions = append(clientOptions, aws.WithStaticCredentials(cfg.AWS.Key, cfg.AWS.Secret))
	}
	awsClients := aws.NewClients(cfg.AWS.Endpoint, clientOptions...)

	provisioner, err := warehouse.NewProvisioner(awsClients, probe.NewPostgres(), config.NewFileStore(opts.configPath), cfg.Settings())
	if err != nil {
		return nil, err
	}

	stopMetricsServer := startMetricsServer(ctx, opts.metricsAddr)

	return &environment{
		config:      cfg,
		provisioner: provisioner,
		close: func() {
			stopMetricsServer()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownMeterProvider(shutdownCtx); err != nil {
				logger.Error(err, "Failed to shut down meter provider")
			}
		},
	}, nil
}

// startMetricsServer serves the metrics registry on addr until the returned function is called.
func startMetricsServer(ctx context.Context, addr string) func() {
	if addr == "" {
		return func() {}
	}

	logger := log.FromContext(ctx).WithValues("address", addr)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "Metrics server stopped")
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}
}

func printYAML(w io.Writer, v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
