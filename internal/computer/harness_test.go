package computer

import (
	"testing"
	"time"

	"github.com/mj1618/macos-computer/internal/platform/platformtest"
	"github.com/stretchr/testify/require"
)

type harness struct {
	computer *Computer
	input    *platformtest.Inputter
	screen   *platformtest.Screenshotter
	procs    *platformtest.ProcessLister
	windows  *platformtest.WindowManager
	sleeps   []time.Duration
}

// newHarness builds a Computer over fakes for a physical screen of w×h with
// no pacing and a recording sleep.
func newHarness(t *testing.T, w, h int, opts ...Option) *harness {
	t.Helper()
	fakes, provider := platformtest.New(w, h)
	hs := &harness{
		input:   fakes.Input,
		screen:  fakes.Screen,
		procs:   fakes.Procs,
		windows: fakes.Windows,
	}
	base := []Option{
		WithPause(0),
		WithDragStepDelay(0),
		WithSleep(func(d time.Duration) { hs.sleeps = append(hs.sleeps, d) }),
	}
	c, err := New(provider, append(base, opts...)...)
	require.NoError(t, err)
	hs.computer = c
	return hs
}
