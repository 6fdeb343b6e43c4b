package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/redshift-provisioner/pkg/key"
	"github.com/redshift-provisioner/pkg/warehouse"
)

const (
	DefaultPath   = "dwh.cfg"
	DefaultRegion = "us-east-1"

	SectionAWS       = "AWS"
	SectionDWH       = "DWH"
	SectionCluster   = "CLUSTER"
	SectionIAMRole   = "IAM_ROLE"
	SectionS3        = "S3"
	SectionProvision = "PROVISION"
)

// Config is read once from the configuration file and never changed afterwards.
// Provisioning results are written back to the file with SaveResult.
type Config struct {
	AWS        AWS
	Warehouse  Warehouse
	Connection Connection
	IAMRoleARN string
	Bucket     string
	Provision  Provision
}

type AWS struct {
	Key      string
	Secret   string
	Region   string
	RoleARN  string
	Endpoint string
}

type Warehouse struct {
	ClusterType       string
	NumNodes          int
	NodeType          string
	ClusterIdentifier string
	DB                string
	DBUser            string
	DBPassword        string
	Port              int
	IAMRoleName       string
}

type Connection struct {
	Host       string
	DBName     string
	DBUser     string
	DBPassword string
	Port       int
}

type Provision struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
	ProbeTimeout time.Duration
}

var requiredWarehouseKeys = []string{
	"DWH_CLUSTER_TYPE",
	"DWH_NUM_NODES",
	"DWH_NODE_TYPE",
	"DWH_CLUSTER_IDENTIFIER",
	"DWH_DB",
	"DWH_DB_USER",
	"DWH_DB_PASSWORD",
	"DWH_PORT",
	"DWH_IAM_ROLE_NAME",
}

// loadOptions keep '#' and ';' inside values, passwords often contain them.
var loadOptions = ini.LoadOptions{IgnoreInlineComment: true}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read configuration file %q", path)
	}

	return parse(file)
}

func parse(file *ini.File) (Config, error) {
	var err error

	missing := []string{}
	for _, name := range requiredWarehouseKeys {
		if value(file, SectionDWH, name) == "" {
			missing = append(missing, SectionDWH+"."+name)
		}
	}
	awsKey, awsSecret := value(file, SectionAWS, "KEY"), value(file, SectionAWS, "SECRET")
	if awsKey == "" && awsSecret != "" {
		missing = append(missing, SectionAWS+".KEY")
	}
	if awsSecret == "" && awsKey != "" {
		missing = append(missing, SectionAWS+".SECRET")
	}
	if len(missing) > 0 {
		return Config{}, &MissingKeysError{Keys: missing}
	}

	cfg := Config{
		AWS: AWS{
			Key:      awsKey,
			Secret:   awsSecret,
			Region:   valueOrDefault(file, SectionAWS, "REGION", DefaultRegion),
			RoleARN:  value(file, SectionAWS, "ROLE_ARN"),
			Endpoint: value(file, SectionAWS, "ENDPOINT"),
		},
		Warehouse: Warehouse{
			ClusterType:       value(file, SectionDWH, "DWH_CLUSTER_TYPE"),
			NodeType:          value(file, SectionDWH, "DWH_NODE_TYPE"),
			ClusterIdentifier: value(file, SectionDWH, "DWH_CLUSTER_IDENTIFIER"),
			DB:                value(file, SectionDWH, "DWH_DB"),
			DBUser:            value(file, SectionDWH, "DWH_DB_USER"),
			DBPassword:        value(file, SectionDWH, "DWH_DB_PASSWORD"),
			IAMRoleName:       value(file, SectionDWH, "DWH_IAM_ROLE_NAME"),
		},
		IAMRoleARN: value(file, SectionIAMRole, "ARN"),
		Bucket:     value(file, SectionS3, "BUCKET"),
	}

	cfg.Warehouse.NumNodes, err = positiveInt(file, SectionDWH, "DWH_NUM_NODES")
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	cfg.Warehouse.Port, err = positiveInt(file, SectionDWH, "DWH_PORT")
	if err != nil {
		return Config{}, errors.WithStack(err)
	}

	cfg.Connection = Connection{
		Host:       value(file, SectionCluster, "HOST"),
		DBName:     valueOrDefault(file, SectionCluster, "DB_NAME", cfg.Warehouse.DB),
		DBUser:     valueOrDefault(file, SectionCluster, "DB_USER", cfg.Warehouse.DBUser),
		DBPassword: valueOrDefault(file, SectionCluster, "DB_PASSWORD", cfg.Warehouse.DBPassword),
		Port:       cfg.Warehouse.Port,
	}
	if value(file, SectionCluster, "DB_PORT") != "" {
		cfg.Connection.Port, err = positiveInt(file, SectionCluster, "DB_PORT")
		if err != nil {
			return Config{}, errors.WithStack(err)
		}
	}

	cfg.Provision.PollInterval, err = duration(file, SectionProvision, "POLL_INTERVAL", warehouse.DefaultPollInterval)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	cfg.Provision.PollTimeout, err = duration(file, SectionProvision, "POLL_TIMEOUT", warehouse.DefaultPollTimeout)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	cfg.Provision.ProbeTimeout, err = duration(file, SectionProvision, "PROBE_TIMEOUT", warehouse.DefaultProbeTimeout)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, errors.WithStack(err)
	}

	return cfg, nil
}

// Validate checks the values that can't be checked while parsing.
func (c Config) Validate() error {
	if !key.IsValidClusterType(c.Warehouse.ClusterType) {
		return &InvalidValueError{
			Key:    SectionDWH + ".DWH_CLUSTER_TYPE",
			Value:  c.Warehouse.ClusterType,
			Reason: "must be " + key.ClusterTypeSingleNode + " or " + key.ClusterTypeMultiNode,
		}
	}
	if c.AWS.RoleARN != "" {
		if _, err := arn.Parse(c.AWS.RoleARN); err != nil {
			return &InvalidValueError{Key: SectionAWS + ".ROLE_ARN", Value: c.AWS.RoleARN, Reason: err.Error()}
		}
	}
	if c.Provision.PollTimeout < c.Provision.PollInterval {
		return &InvalidValueError{
			Key:    SectionProvision + ".POLL_TIMEOUT",
			Value:  c.Provision.PollTimeout.String(),
			Reason: "must not be shorter than POLL_INTERVAL",
		}
	}

	return nil
}

func (c Config) ClusterSpec() warehouse.ClusterSpec {
	return warehouse.ClusterSpec{
		ClusterType:       strings.ToLower(c.Warehouse.ClusterType),
		NodeType:          c.Warehouse.NodeType,
		NumberOfNodes:     c.Warehouse.NumNodes,
		DBName:            c.Warehouse.DB,
		ClusterIdentifier: c.Warehouse.ClusterIdentifier,
		MasterUsername:    c.Warehouse.DBUser,
		MasterPassword:    c.Warehouse.DBPassword,
		Port:              c.Warehouse.Port,
		RoleName:          c.Warehouse.IAMRoleName,
	}
}

// Endpoint returns the connection parameters of the [CLUSTER] section.
func (c Config) Endpoint() warehouse.Endpoint {
	return warehouse.Endpoint{
		Host:     c.Connection.Host,
		Port:     c.Connection.Port,
		Database: c.Connection.DBName,
		User:     c.Connection.DBUser,
		Password: c.Connection.DBPassword,
	}
}

func (c Config) Settings() warehouse.Settings {
	return warehouse.Settings{
		Region:       c.AWS.Region,
		RoleToAssume: c.AWS.RoleARN,
		Bucket:       c.Bucket,
		Poll: warehouse.WaitOptions{
			Interval: c.Provision.PollInterval,
			Timeout:  c.Provision.PollTimeout,
		},
		ProbeTimeout: c.Provision.ProbeTimeout,
	}
}

// lookupSection and lookup ignore case, files written by other tools often use lower case names.
func lookupSection(file *ini.File, section string) *ini.Section {
	for _, s := range file.Sections() {
		if strings.EqualFold(s.Name(), section) {
			return s
		}
	}

	return nil
}

func lookup(file *ini.File, section, name string) *ini.Key {
	s := lookupSection(file, section)
	if s == nil {
		return nil
	}
	if s.HasKey(name) {
		return s.Key(name)
	}
	for _, k := range s.Keys() {
		if strings.EqualFold(k.Name(), name) {
			return k
		}
	}

	return nil
}

func value(file *ini.File, section, name string) string {
	k := lookup(file, section, name)
	if k == nil {
		return ""
	}

	return strings.TrimSpace(k.String())
}

func valueOrDefault(file *ini.File, section, name, defaultValue string) string {
	v := value(file, section, name)
	if v == "" {
		return defaultValue
	}

	return v
}

func positiveInt(file *ini.File, section, name string) (int, error) {
	raw := value(file, section, name)
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, &InvalidValueError{Key: section + "." + name, Value: raw, Reason: "must be a positive integer"}
	}

	return parsed, nil
}

func duration(file *ini.File, section, name string, defaultValue time.Duration) (time.Duration, error) {
	raw := value(file, section, name)
	if raw == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return 0, &InvalidValueError{Key: section + "." + name, Value: raw, Reason: "must be a positive duration such as 30s"}
	}

	return parsed, nil
}
