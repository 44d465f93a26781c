// Package platformtest provides in-memory platform backends that record the
// native events they receive, for use in tests.
package platformtest

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/mj1618/macos-computer/internal/platform"
)

// Inputter logs every native event as a short string such as
// "move 10,20", "click 5,5 left x1", "down left", "vscroll -3", "tap a" or
// "chord [command c]".
type Inputter struct {
	Width, Height int
	X, Y          int
	Events        []string

	FailMoveAt int // 1-based index of the MoveMouse call that fails; 0 never
	FailUp     bool
	FailChord  bool

	moves int
}

func (r *Inputter) ScreenSize() (int, int) { return r.Width, r.Height }
func (r *Inputter) Location() (int, int)   { return r.X, r.Y }

func (r *Inputter) MoveMouse(x, y int) error {
	r.moves++
	if r.FailMoveAt > 0 && r.moves == r.FailMoveAt {
		return errors.New("move failed")
	}
	r.X, r.Y = x, y
	r.Events = append(r.Events, fmt.Sprintf("move %d,%d", x, y))
	return nil
}

func (r *Inputter) Click(x, y int, button platform.MouseButton, count int) error {
	r.X, r.Y = x, y
	r.Events = append(r.Events, fmt.Sprintf("click %d,%d %s x%d", x, y, button, count))
	return nil
}

func (r *Inputter) MouseDown(button platform.MouseButton) error {
	r.Events = append(r.Events, "down "+button.String())
	return nil
}

func (r *Inputter) MouseUp(button platform.MouseButton) error {
	if r.FailUp {
		return errors.New("release failed")
	}
	r.Events = append(r.Events, "up "+button.String())
	return nil
}

func (r *Inputter) ScrollVertical(amount int) error {
	r.Events = append(r.Events, fmt.Sprintf("vscroll %d", amount))
	return nil
}

func (r *Inputter) ScrollHorizontal(amount int) error {
	r.Events = append(r.Events, fmt.Sprintf("hscroll %d", amount))
	return nil
}

func (r *Inputter) TypeText(text string) error {
	r.Events = append(r.Events, "type "+text)
	return nil
}

func (r *Inputter) KeyTap(key string) error {
	r.Events = append(r.Events, "tap "+key)
	return nil
}

func (r *Inputter) KeyChord(keys []string) error {
	if r.FailChord {
		return errors.New("chord failed")
	}
	r.Events = append(r.Events, fmt.Sprintf("chord %v", keys))
	return nil
}

// Screenshotter returns a patterned Width×Height image.
type Screenshotter struct {
	Width, Height int
	Err           error
}

func (f *Screenshotter) CaptureScreen() (image.Image, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y += 7 {
		for x := 0; x < f.Width; x += 5 {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img, nil
}

type process struct {
	name string
	err  error
}

func (p process) Name(context.Context) (string, error) { return p.name, p.err }

// NewProcess returns a process reporting name.
func NewProcess(name string) platform.Process {
	return process{name: name}
}

// VanishedProcess returns a process whose name lookup fails with err.
func VanishedProcess(err error) platform.Process {
	return process{err: err}
}

type ProcessLister struct {
	Procs []platform.Process
	Err   error
}

func (f *ProcessLister) Processes(context.Context) ([]platform.Process, error) {
	return f.Procs, f.Err
}

// WindowManager either answers immediately or, with Hang set, blocks until
// the context expires like a stuck osascript.
type WindowManager struct {
	Frontmost string
	Err       error
	Hang      bool
	Activated []string
}

func (f *WindowManager) FrontmostApp(ctx context.Context) (string, error) {
	if f.Hang {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.Frontmost, f.Err
}

func (f *WindowManager) ActivateApp(ctx context.Context, name string) error {
	if f.Hang {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.Err != nil {
		return f.Err
	}
	f.Activated = append(f.Activated, name)
	return nil
}

type PermissionChecker struct {
	Granted bool
	Err     error
}

func (f PermissionChecker) InputPermissionGranted() (bool, error) { return f.Granted, f.Err }

// Backends bundles one of each fake.
type Backends struct {
	Input   *Inputter
	Screen  *Screenshotter
	Procs   *ProcessLister
	Windows *WindowManager
}

// New returns fakes for a physical screen of w×h with the pointer parked in
// the middle and permission granted.
func New(w, h int) (*Backends, *platform.Provider) {
	b := &Backends{
		Input:   &Inputter{Width: w, Height: h, X: w / 2, Y: h / 2},
		Screen:  &Screenshotter{Width: w, Height: h},
		Procs:   &ProcessLister{},
		Windows: &WindowManager{},
	}
	return b, &platform.Provider{
		Inputter:          b.Input,
		Screenshotter:     b.Screen,
		ProcessLister:     b.Procs,
		WindowManager:     b.Windows,
		PermissionChecker: PermissionChecker{Granted: true},
	}
}
