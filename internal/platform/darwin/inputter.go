//go:build darwin && cgo

package darwin

import (
	"errors"
	"fmt"

	"github.com/go-vgo/robotgo"
	"github.com/mj1618/macos-computer/internal/platform"
)

// DarwinInputter implements platform.Inputter with robotgo. Coordinates are
// in the screen space robotgo reports from GetScreenSize.
type DarwinInputter struct{}

// NewInputter creates a new macOS inputter.
func NewInputter() *DarwinInputter {
	return &DarwinInputter{}
}

func (i *DarwinInputter) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

func (i *DarwinInputter) Location() (int, int) {
	return robotgo.Location()
}

func (i *DarwinInputter) MoveMouse(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (i *DarwinInputter) Click(x, y int, button platform.MouseButton, count int) error {
	if count < 1 || count > 2 {
		return fmt.Errorf("unsupported click count %d", count)
	}
	robotgo.Move(x, y)
	robotgo.Click(button.String(), count == 2)
	return nil
}

func (i *DarwinInputter) MouseDown(button platform.MouseButton) error {
	if err := robotgo.Toggle(button.String()); err != nil {
		return fmt.Errorf("press %s button: %w", button, err)
	}
	return nil
}

func (i *DarwinInputter) MouseUp(button platform.MouseButton) error {
	if err := robotgo.Toggle(button.String(), "up"); err != nil {
		return fmt.Errorf("release %s button: %w", button, err)
	}
	return nil
}

func (i *DarwinInputter) ScrollVertical(amount int) error {
	switch {
	case amount > 0:
		robotgo.ScrollDir(amount, "up")
	case amount < 0:
		robotgo.ScrollDir(-amount, "down")
	}
	return nil
}

func (i *DarwinInputter) ScrollHorizontal(amount int) error {
	switch {
	case amount > 0:
		robotgo.ScrollDir(amount, "right")
	case amount < 0:
		robotgo.ScrollDir(-amount, "left")
	}
	return nil
}

func (i *DarwinInputter) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

func (i *DarwinInputter) KeyTap(key string) error {
	if err := robotgo.KeyTap(robotgoKey(key)); err != nil {
		return fmt.Errorf("tap %q: %w", key, err)
	}
	return nil
}

// KeyChord sends modifier chords as one tap with flags. Other chords hold
// every key in order and release them in reverse, releasing whatever was
// pressed even when a later press fails.
func (i *DarwinInputter) KeyChord(keys []string) error {
	if key, modifiers, ok := splitChord(keys); ok {
		args := make([]interface{}, len(modifiers))
		for n, m := range modifiers {
			args[n] = m
		}
		if err := robotgo.KeyTap(key, args...); err != nil {
			return fmt.Errorf("chord %v: %w", keys, err)
		}
		return nil
	}

	var pressed []string
	var err error
	for _, k := range keys {
		name := robotgoKey(k)
		if err = robotgo.KeyToggle(name, "down"); err != nil {
			err = fmt.Errorf("press %q: %w", k, err)
			break
		}
		pressed = append(pressed, name)
	}
	for n := len(pressed) - 1; n >= 0; n-- {
		if upErr := robotgo.KeyToggle(pressed[n], "up"); upErr != nil {
			err = errors.Join(err, fmt.Errorf("release %q: %w", pressed[n], upErr))
		}
	}
	return err
}
