package platform

import (
	"context"
	"image"
)

// Inputter synthesizes mouse and keyboard input. All coordinates are in
// physical screen space.
type Inputter interface {
	// ScreenSize returns the physical size of the main display.
	ScreenSize() (width, height int)
	// Location returns the current pointer position.
	Location() (x, y int)
	MoveMouse(x, y int) error
	Click(x, y int, button MouseButton, count int) error
	MouseDown(button MouseButton) error
	MouseUp(button MouseButton) error
	// ScrollVertical scrolls by amount lines; positive is up.
	ScrollVertical(amount int) error
	// ScrollHorizontal scrolls by amount columns; positive is right.
	ScrollHorizontal(amount int) error
	TypeText(text string) error
	KeyTap(key string) error
	// KeyChord presses keys in order, then releases them in reverse.
	KeyChord(keys []string) error
}

// Screenshotter captures the full physical screen.
type Screenshotter interface {
	CaptureScreen() (image.Image, error)
}

// Process is a single entry of a process snapshot. Name fails when the
// process exited or cannot be inspected.
type Process interface {
	Name(ctx context.Context) (string, error)
}

// ProcessLister enumerates running processes.
type ProcessLister interface {
	Processes(ctx context.Context) ([]Process, error)
}

// WindowManager queries and changes application focus through OS scripting.
// Implementations must honour ctx cancellation.
type WindowManager interface {
	FrontmostApp(ctx context.Context) (string, error)
	ActivateApp(ctx context.Context, name string) error
}

// PermissionChecker probes whether the process may inject input events.
type PermissionChecker interface {
	InputPermissionGranted() (bool, error)
}
