package warehouse

import (
	"net/http"
	"strings"
)

const (
	ClusterStatusAvailable = "available"
	ClusterStatusCreating  = "creating"
)

// terminalStatuses are cluster states that never lead to "available" without operator action.
var terminalStatuses = []string{
	"deleting",
	"final-snapshot",
	"hardware-failure",
	"storage-full",
}

type ClusterSpec struct {
	// ClusterType is either single-node or multi-node.
	ClusterType       string
	NodeType          string
	NumberOfNodes     int
	DBName            string
	ClusterIdentifier string
	MasterUsername    string
	MasterPassword    string
	Port              int
	// RoleName is the execution role the cluster assumes to read from S3.
	RoleName string
}

// Cluster is the provider's view of a cluster. It is never mutated by this program.
type Cluster struct {
	Identifier      string   `json:"clusterIdentifier"`
	NodeType        string   `json:"nodeType"`
	Status          string   `json:"clusterStatus"`
	MasterUsername  string   `json:"masterUsername"`
	DBName          string   `json:"dbName"`
	EndpointAddress string   `json:"endpointAddress,omitempty"`
	EndpointPort    int      `json:"endpointPort,omitempty"`
	NumberOfNodes   int      `json:"numberOfNodes"`
	VPCId           string   `json:"vpcId,omitempty"`
	IAMRoleARNs     []string `json:"iamRoleArns,omitempty"`
}

type Role struct {
	Name string `json:"name"`
	ARN  string `json:"arn"`
}

type Identity struct {
	Account string `json:"account"`
	ARN     string `json:"arn"`
	UserID  string `json:"userId"`
}

// Endpoint holds what is needed to open a database connection to the cluster.
type Endpoint struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// ClusterAccepted reports whether a create request was accepted by the provider.
func ClusterAccepted(statusCode int) bool {
	return statusCode == http.StatusOK
}

func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func IsAvailable(status string) bool {
	return NormalizeStatus(status) == ClusterStatusAvailable
}

func IsFailed(status string) bool {
	normalized := NormalizeStatus(status)
	if strings.HasPrefix(normalized, "incompatible-") {
		return true
	}

	for _, terminal := range terminalStatuses {
		if normalized == terminal {
			return true
		}
	}

	return false
}

// FirstRoleARN returns the first execution role attached to the cluster, if any.
func (c Cluster) FirstRoleARN() string {
	if len(c.IAMRoleARNs) == 0 {
		return ""
	}

	return c.IAMRoleARNs[0]
}
