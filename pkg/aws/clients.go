package aws

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/redshift-provisioner/pkg/key"
	"github.com/redshift-provisioner/pkg/warehouse"
)

type Clients struct {
	// endpoint is the AWS API endpoint to use
	endpoint string

	credentials   awssdk.CredentialsProvider
	meterProvider metrics.MeterProvider
	configCache   *gocache.Cache
}

type Option func(*Clients)

// WithStaticCredentials makes every client sign with the given key pair instead of
// the default credential chain.
func WithStaticCredentials(accessKeyID, secretAccessKey string) Option {
	return func(c *Clients) {
		c.credentials = credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")
	}
}

func WithMeterProvider(meterProvider metrics.MeterProvider) Option {
	return func(c *Clients) {
		c.meterProvider = meterProvider
	}
}

var CurrentCommit = func() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return ""
}()

func NewClients(endpoint string, opts ...Option) *Clients {
	c := &Clients{
		endpoint:    endpoint,
		configCache: gocache.New(15*time.Minute, 60*time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Clients) NewIAMClient(region, roleToAssume string) (warehouse.IAMClient, error) {
	cfg, err := c.config(region, roleToAssume)
	if err != nil {
		return &IAM{}, errors.WithStack(err)
	}

	client := iam.NewFromConfig(cfg, func(o *iam.Options) {
		o.BaseEndpoint = c.baseEndpoint()
		if c.meterProvider != nil {
			o.MeterProvider = c.meterProvider
		}
	})

	return &IAM{client: client}, nil
}

func (c *Clients) NewRedshiftClient(region, roleToAssume string) (warehouse.RedshiftClient, error) {
	cfg, err := c.config(region, roleToAssume)
	if err != nil {
		return &Redshift{}, errors.WithStack(err)
	}

	client := redshift.NewFromConfig(cfg, func(o *redshift.Options) {
		o.BaseEndpoint = c.baseEndpoint()
		if c.meterProvider != nil {
			o.MeterProvider = c.meterProvider
		}
	})

	return &Redshift{client: client}, nil
}

func (c *Clients) NewEC2Client(region, roleToAssume string) (warehouse.EC2Client, error) {
	cfg, err := c.config(region, roleToAssume)
	if err != nil {
		return &EC2{}, errors.WithStack(err)
	}

	client := ec2.NewFromConfig(cfg, func(o *ec2.Options) {
		o.BaseEndpoint = c.baseEndpoint()
		if c.meterProvider != nil {
			o.MeterProvider = c.meterProvider
		}
	})

	return &EC2{client: client}, nil
}

func (c *Clients) NewIdentityClient(region, roleToAssume string) (warehouse.IdentityClient, error) {
	cfg, err := c.config(region, roleToAssume)
	if err != nil {
		return &STS{}, errors.WithStack(err)
	}

	client := sts.NewFromConfig(cfg, func(o *sts.Options) {
		o.BaseEndpoint = c.baseEndpoint()
		if c.meterProvider != nil {
			o.MeterProvider = c.meterProvider
		}
	})

	return &STS{client: client}, nil
}

func (c *Clients) NewStorageClient(region, roleToAssume string) (warehouse.StorageClient, error) {
	cfg, err := c.config(region, roleToAssume)
	if err != nil {
		return &S3{}, errors.WithStack(err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = c.baseEndpoint()
		if c.meterProvider != nil {
			o.MeterProvider = c.meterProvider
		}
		// Custom endpoints such as localstack don't serve virtual-hosted buckets.
		o.UsePathStyle = c.endpoint != ""
	})

	return &S3{client: client}, nil
}

func (c *Clients) baseEndpoint() *string {
	if c.endpoint == "" {
		return nil
	}

	return awssdk.String(c.endpoint)
}

// config returns the shared SDK configuration for a region, assuming roleToAssume when it is set.
func (c *Clients) config(region, roleToAssume string) (awssdk.Config, error) {
	if region == "" {
		return awssdk.Config{}, errors.New("region can't be empty")
	}

	cacheKey := fmt.Sprintf("config/%s/%s", region, roleToAssume)
	if cachedValue, ok := c.configCache.Get(cacheKey); ok {
		return cachedValue.(awssdk.Config), nil
	}

	loadOptions := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if c.credentials != nil {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(c.credentials))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOptions...)
	if err != nil {
		return awssdk.Config{}, errors.WithStack(err)
	}

	cfg.APIOptions = append(cfg.APIOptions,
		awsmiddleware.AddUserAgentKeyValue(key.AppName, userAgentVersion()),
		captureRequestMetrics,
	)
	if roleToAssume != "" {
		stsClient := sts.NewFromConfig(cfg, func(o *sts.Options) {
			o.BaseEndpoint = c.baseEndpoint()
		})
		cfg.Credentials = awssdk.NewCredentialsCache(stscreds.NewAssumeRoleProvider(stsClient, roleToAssume, func(aro *stscreds.AssumeRoleOptions) {
			aro.RoleSessionName = key.AppName
		}))
	}

	c.configCache.SetDefault(cacheKey, cfg)
	return cfg, nil
}

func userAgentVersion() string {
	if CurrentCommit == "" {
		return "dev"
	}

	return CurrentCommit
}
