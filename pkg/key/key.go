package key

import (
	"encoding/json"
	"strings"
)

const (
	AppName = "redshift-provisioner"

	RedshiftServicePrincipal = "redshift.amazonaws.com"
	S3ReadOnlyPolicyARN      = "arn:aws:iam::aws:policy/AmazonS3ReadOnlyAccess"
	RoleDescription          = "Allows Redshift clusters to call AWS services on your behalf."
	RolePath                 = "/"

	DefaultSecurityGroupName = "default"
	AnyIPv4CIDR              = "0.0.0.0/0"
	IngressProtocol          = "tcp"

	ClusterTypeSingleNode = "single-node"
	ClusterTypeMultiNode  = "multi-node"
)

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Action    string            `json:"Action"`
	Effect    string            `json:"Effect"`
	Principal map[string]string `json:"Principal"`
}

// AssumeRolePolicyDocument returns the trust policy letting Redshift assume the execution role.
func AssumeRolePolicyDocument() (string, error) {
	document, err := json.Marshal(policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{
			{
				Action:    "sts:AssumeRole",
				Effect:    "Allow",
				Principal: map[string]string{"Service": RedshiftServicePrincipal},
			},
		},
	})
	if err != nil {
		return "", err
	}

	return string(document), nil
}

func IsMultiNode(clusterType string) bool {
	return strings.EqualFold(clusterType, ClusterTypeMultiNode)
}

func IsValidClusterType(clusterType string) bool {
	return IsMultiNode(clusterType) || strings.EqualFold(clusterType, ClusterTypeSingleNode)
}
