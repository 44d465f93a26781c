//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int is_trusted() {
    return AXIsProcessTrusted();
}
*/
import "C"

// DarwinPermissionChecker reports the Accessibility permission that gates
// synthesized input events.
type DarwinPermissionChecker struct{}

// NewPermissionChecker creates a new permission checker.
func NewPermissionChecker() *DarwinPermissionChecker {
	return &DarwinPermissionChecker{}
}

func (p *DarwinPermissionChecker) InputPermissionGranted() (bool, error) {
	return IsAccessibilityTrusted(), nil
}

// IsAccessibilityTrusted returns true if the process has accessibility permission.
func IsAccessibilityTrusted() bool {
	return C.is_trusted() != 0
}
