package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Inputter          Inputter
	Screenshotter     Screenshotter
	ProcessLister     ProcessLister
	WindowManager     WindowManager
	PermissionChecker PermissionChecker
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("macos-computer is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 (cgo)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// Validate reports the first missing backend.
func (p *Provider) Validate() error {
	switch {
	case p == nil:
		return fmt.Errorf("no platform provider")
	case p.Inputter == nil:
		return fmt.Errorf("input simulation not available on this platform")
	case p.Screenshotter == nil:
		return fmt.Errorf("screen capture not available on this platform")
	case p.ProcessLister == nil:
		return fmt.Errorf("process enumeration not available on this platform")
	case p.WindowManager == nil:
		return fmt.Errorf("window management not available on this platform")
	}
	return nil
}
