package computer

import (
	"context"

	"github.com/mj1618/macos-computer/internal/platform"
	"go.opentelemetry.io/otel/attribute"
)

// PermissionState is the coarse outcome of a capability probe.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
	PermissionUnknown PermissionState = "unknown"
)

// PermissionStatus describes whether input injection is allowed and, when it
// is not, how the user can fix it.
type PermissionStatus struct {
	Capability  string          `yaml:"capability"            json:"capability"`
	State       PermissionState `yaml:"state"                 json:"state"`
	Message     string          `yaml:"message,omitempty"     json:"message,omitempty"`
	Remediation []string        `yaml:"remediation,omitempty" json:"remediation,omitempty"`
}

// Granted reports whether the capability is confirmed.
func (p PermissionStatus) Granted() bool {
	return p.State == PermissionGranted
}

const accessibilityCapability = "accessibility"

var accessibilityRemediation = []string{
	"Open System Settings > Privacy & Security > Accessibility",
	"Unlock the pane if prompted",
	"Add the terminal or application running macos-computer to the list",
	"Restart that application",
}

// Permissions probes the input-injection permission.
func (c *Computer) Permissions(ctx context.Context) PermissionStatus {
	const op = "Permissions"
	_, _, step := c.begin(ctx, op)
	status := probePermission(c.permissions)
	step.SetAttributes(attribute.String("state", string(status.State)))
	step.End(nil)
	return status
}

func probePermission(checker platform.PermissionChecker) PermissionStatus {
	status := PermissionStatus{Capability: accessibilityCapability}
	if checker == nil {
		status.State = PermissionUnknown
		status.Message = "no permission probe on this platform"
		return status
	}

	granted, err := checker.InputPermissionGranted()
	switch {
	case err != nil:
		status.State = PermissionUnknown
		status.Message = "permission probe failed: " + err.Error()
		status.Remediation = accessibilityRemediation
	case !granted:
		status.State = PermissionDenied
		status.Message = "accessibility permission is required to send input events"
		status.Remediation = accessibilityRemediation
	default:
		status.State = PermissionGranted
		status.Message = "accessibility permission granted"
	}
	return status
}
