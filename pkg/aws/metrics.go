package aws

import (
	"context"
	"strconv"
	"time"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	smithymetrics "github.com/aws/smithy-go/metrics"
	"github.com/aws/smithy-go/metrics/smithyotelmetrics"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	otelprometheus "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	metricAWSSubsystem       = "aws"
	metricRequestCountKey    = "api_requests_total"
	metricRequestDurationKey = "api_request_duration_seconds"
	metricServiceLabel       = "service"
	metricRegionLabel        = "region"
	metricOperationLabel     = "operation"
	metricStatusCodeLabel    = "status_code"
	metricErrorCodeLabel     = "error_code"
)

var (
	awsRequestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: metricAWSSubsystem,
		Name:      metricRequestCountKey,
		Help:      "Total number of AWS requests",
	}, []string{metricServiceLabel, metricRegionLabel, metricOperationLabel, metricStatusCodeLabel, metricErrorCodeLabel})
	awsRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Subsystem: metricAWSSubsystem,
		Name:      metricRequestDurationKey,
		Help:      "Latency of HTTP requests to AWS",
	}, []string{metricServiceLabel, metricRegionLabel, metricOperationLabel})
)

func init() {
	metrics.Registry.MustRegister(awsRequestCount)
	metrics.Registry.MustRegister(awsRequestDurationSeconds)
}

// captureRequestMetrics records every attempt, including the ones the SDK retries.
// It wraps the operation deserializer so API errors are labelled with their code.
func captureRequestMetrics(stack *middleware.Stack) error {
	return stack.Deserialize.Add(middleware.DeserializeMiddlewareFunc("CaptureRequestMetrics", func(
		ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler,
	) (middleware.DeserializeOutput, middleware.Metadata, error) {
		start := time.Now()
		out, metadata, err := next.HandleDeserialize(ctx, in)

		service := awsmiddleware.GetServiceID(ctx)
		region := awsmiddleware.GetRegion(ctx)
		operation := awsmiddleware.GetOperationName(ctx)
		statusCode := "0"
		errorCode := ""
		if response, ok := out.RawResponse.(*smithyhttp.Response); ok {
			statusCode = strconv.Itoa(response.StatusCode)
		}
		if err != nil {
			var ok bool
			if errorCode, ok = ErrorCode(err); !ok {
				errorCode = "internal"
			}
		}
		awsRequestCount.WithLabelValues(service, region, operation, statusCode, errorCode).Inc()
		awsRequestDurationSeconds.WithLabelValues(service, region, operation).Observe(time.Since(start).Seconds())

		return out, metadata, err
	}), middleware.Before)
}

// NewMeterProvider exposes the SDK's own client metrics through registerer.
// The returned function flushes and stops the provider.
func NewMeterProvider(registerer prometheus.Registerer) (smithymetrics.MeterProvider, func(context.Context) error, error) {
	exporter, err := otelprometheus.New(otelprometheus.WithRegisterer(registerer))
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	return smithyotelmetrics.Adapt(provider), provider.Shutdown, nil
}
