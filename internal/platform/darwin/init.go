//go:build darwin && cgo

package darwin

import "github.com/mj1618/macos-computer/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Inputter:          NewInputter(),
			Screenshotter:     NewScreenshotter(),
			ProcessLister:     NewProcessLister(),
			WindowManager:     NewWindowManager(),
			PermissionChecker: NewPermissionChecker(),
		}, nil
	}
}
