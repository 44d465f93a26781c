package computer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mj1618/macos-computer/internal/platform"
	"github.com/mj1618/macos-computer/internal/platform/platformtest"
	"github.com/mj1618/macos-computer/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningApplications(t *testing.T) {
	h := newHarness(t, 1366, 768)
	h.procs.Procs = []platform.Process{
		platformtest.NewProcess("Safari"),
		platformtest.NewProcess("Finder"),
		platformtest.NewProcess("Safari"),
		platformtest.NewProcess(".hidden"),
		platformtest.NewProcess(""),
		platformtest.VanishedProcess(errors.New("process exited")),
		platformtest.NewProcess("Dock"),
	}

	got := h.computer.RunningApplications(context.Background())
	require.True(t, got.Known())
	assert.Equal(t, []string{"Dock", "Finder", "Safari"}, got.Value)
	assert.Equal(t, got.Value, h.computer.GetRunningApplications(context.Background()))
}

func TestRunningApplications_EnumerationFails(t *testing.T) {
	h := newHarness(t, 1366, 768)
	h.procs.Err = errors.New("sysctl denied")

	got := h.computer.RunningApplications(context.Background())
	assert.False(t, got.Known())
	assert.NotNil(t, got.Value)
	assert.Empty(t, got.Value)
}

func TestActiveWindow(t *testing.T) {
	h := newHarness(t, 1366, 768)
	h.windows.Frontmost = "Terminal\n"

	got := h.computer.ActiveWindow(context.Background())
	require.True(t, got.Known())
	assert.Equal(t, "Terminal", got.Value)
	assert.Equal(t, "Terminal", h.computer.GetActiveWindowTitle(context.Background()))
}

func TestActiveWindow_Failure(t *testing.T) {
	h := newHarness(t, 1366, 768)
	h.windows.Err = errors.New("osascript exited 1")

	got := h.computer.ActiveWindow(context.Background())
	assert.False(t, got.Known())
	assert.Equal(t, "", got.Value)
	assert.Equal(t, apperr.CodeActionFailed, apperr.CodeOf(got.Err))
}

func TestScriptTimeout(t *testing.T) {
	h := newHarness(t, 1366, 768, WithScriptTimeout(10*time.Millisecond))
	h.windows.Hang = true

	title := h.computer.ActiveWindow(context.Background())
	assert.False(t, title.Known())
	assert.Equal(t, "", title.Value)
	assert.Equal(t, apperr.CodeTimeout, apperr.CodeOf(title.Err))

	focused := h.computer.Focus(context.Background(), "Safari")
	assert.False(t, focused.Known())
	assert.False(t, focused.Value)
	assert.Equal(t, apperr.CodeTimeout, apperr.CodeOf(focused.Err))
}

func TestFocus(t *testing.T) {
	h := newHarness(t, 1366, 768)

	assert.True(t, h.computer.FocusApplication(context.Background(), " Safari "))
	assert.Equal(t, []string{"Safari"}, h.windows.Activated)

	got := h.computer.Focus(context.Background(), "")
	assert.False(t, got.Value)
	assert.True(t, IsValidation(got.Err))

	h.windows.Err = errors.New("application not found")
	assert.False(t, h.computer.FocusApplication(context.Background(), "Nope"))
}

func TestGetCurrentURL(t *testing.T) {
	h := newHarness(t, 1366, 768)
	assert.Equal(t, "", h.computer.GetCurrentURL(context.Background()))
}
