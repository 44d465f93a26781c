//go:build darwin

package darwin

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DarwinWindowManager implements platform.WindowManager through osascript.
// Every call is bounded by the caller's context.
type DarwinWindowManager struct{}

// NewWindowManager creates a new macOS window manager.
func NewWindowManager() *DarwinWindowManager {
	return &DarwinWindowManager{}
}

func (wm *DarwinWindowManager) FrontmostApp(ctx context.Context) (string, error) {
	out, err := runOSAScript(ctx, frontmostAppScript)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (wm *DarwinWindowManager) ActivateApp(ctx context.Context, name string) error {
	_, err := runOSAScript(ctx, activateAppScript(name))
	return err
}

func runOSAScript(ctx context.Context, script string) (string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("osascript: %w", ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("osascript: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("osascript: %w", err)
	}
	return string(out), nil
}
