package conditions

import "fmt"

// Condition is a milestone of the provisioning sequence.
type Condition string

const (
	PreflightPassed  Condition = "PreflightPassed"
	RoleCreated      Condition = "RoleCreated"
	ClusterRequested Condition = "ClusterRequested"
	ClusterAvailable Condition = "ClusterAvailable"
	ConfigPersisted  Condition = "ConfigPersisted"
	PortsOpened      Condition = "PortsOpened"
	Probed           Condition = "Probed"

	ClusterDeleted Condition = "ClusterDeleted"
	IngressRevoked Condition = "IngressRevoked"
	RoleDeleted    Condition = "RoleDeleted"
)

type Status struct {
	Type    Condition `json:"type"`
	Ready   bool      `json:"ready"`
	Reason  string    `json:"reason,omitempty"`
	Message string    `json:"message,omitempty"`
}

type Setter interface {
	GetConditions() []Status
	SetConditions([]Status)
}

func MarkReady(setter Setter, condition Condition) {
	set(setter, Status{Type: condition, Ready: true})
}

func MarkNotReady(setter Setter, condition Condition, reason, messageFormat string, messageArgs ...interface{}) {
	set(setter, Status{
		Type:    condition,
		Ready:   false,
		Reason:  reason,
		Message: fmt.Sprintf(messageFormat, messageArgs...),
	})
}

func IsReady(setter Setter, condition Condition) bool {
	status, ok := Get(setter, condition)
	return ok && status.Ready
}

func Get(setter Setter, condition Condition) (Status, bool) {
	for _, status := range setter.GetConditions() {
		if status.Type == condition {
			return status, true
		}
	}

	return Status{}, false
}

// set replaces an existing status of the same type in place so the
// order conditions were first reached in is kept.
func set(setter Setter, status Status) {
	current := setter.GetConditions()
	for i := range current {
		if current[i].Type == status.Type {
			current[i] = status
			setter.SetConditions(current)
			return
		}
	}

	setter.SetConditions(append(current, status))
}
