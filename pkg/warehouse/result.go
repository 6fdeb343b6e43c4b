package warehouse

import (
	"github.com/redshift-provisioner/pkg/conditions"
)

// Result holds the values computed while provisioning.
type Result struct {
	Identity        Identity            `json:"identity"`
	RoleARN         string              `json:"roleArn,omitempty"`
	ClusterStatus   string              `json:"clusterStatus,omitempty"`
	EndpointAddress string              `json:"endpointAddress,omitempty"`
	EndpointPort    int                 `json:"endpointPort,omitempty"`
	VPCId           string              `json:"vpcId,omitempty"`
	SecurityGroupId string              `json:"securityGroupId,omitempty"`
	IngressErr      error               `json:"-"`
	Conditions      []conditions.Status `json:"conditions,omitempty"`
}

func (r *Result) GetConditions() []conditions.Status {
	return r.Conditions
}

func (r *Result) SetConditions(statuses []conditions.Status) {
	r.Conditions = statuses
}
