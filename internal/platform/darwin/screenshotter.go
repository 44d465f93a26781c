//go:build darwin && cgo

package darwin

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// DarwinScreenshotter implements platform.Screenshotter for the main
// display. The capture is at native pixel resolution, which on Retina
// displays is larger than the input coordinate space.
type DarwinScreenshotter struct {
	display int
}

// NewScreenshotter creates a screenshotter for the main display.
func NewScreenshotter() *DarwinScreenshotter {
	return &DarwinScreenshotter{display: 0}
}

func (s *DarwinScreenshotter) CaptureScreen() (image.Image, error) {
	if screenshot.NumActiveDisplays() <= s.display {
		return nil, fmt.Errorf("no active display %d", s.display)
	}
	img, err := screenshot.CaptureDisplay(s.display)
	if err != nil {
		return nil, fmt.Errorf(
			"screen capture failed: %w\n\n"+
				"Grant permission at: System Settings > Privacy & Security > Screen Recording\n"+
				"Add your terminal app (e.g. Terminal.app, iTerm2, or the IDE running this command).", err)
	}
	return img, nil
}
