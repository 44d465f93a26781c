package computer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/macos-computer/pkg/apperr"
	"github.com/mj1618/macos-computer/pkg/logg"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Lookup is the outcome of a best-effort query. A failed lookup keeps the
// zero (or fallback) Value and records why in Err; it never panics or
// propagates as an error return.
type Lookup[T any] struct {
	Value T
	Err   error
}

// Known reports whether the query succeeded.
func (l Lookup[T]) Known() bool {
	return l.Err == nil
}

func known[T any](v T) Lookup[T] {
	return Lookup[T]{Value: v}
}

func unknown[T any](fallback T, err error) Lookup[T] {
	return Lookup[T]{Value: fallback, Err: err}
}

// RunningApplications returns the sorted, de-duplicated names of running
// processes, skipping dot-prefixed names and processes that vanish or deny
// access while the snapshot is taken.
func (c *Computer) RunningApplications(ctx context.Context) Lookup[[]string] {
	const op = "RunningApplications"
	ctx, logger, step := c.begin(ctx, op)

	procs, err := c.processes.Processes(ctx)
	if err != nil {
		err = apperr.Wrap(op, apperr.CodeUnavailable, err, nil)
		step.End(err)
		return unknown([]string{}, err)
	}

	seen := make(map[string]struct{}, len(procs))
	skipped := 0
	for _, p := range procs {
		name, err := p.Name(ctx)
		if err != nil {
			skipped++
			continue
		}
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	logger.Debug("Enumerated processes",
		zap.Int("processes", len(procs)),
		zap.Int("skipped", skipped),
		zap.Int("applications", len(names)))
	step.SetAttributes(attribute.Int("applications", len(names)), attribute.Int("skipped", skipped))
	step.End(nil)
	return known(names)
}

// GetRunningApplications is RunningApplications without the failure detail.
func (c *Computer) GetRunningApplications(ctx context.Context) []string {
	return c.RunningApplications(ctx).Value
}

// ActiveWindow asks OS scripting for the frontmost application's name.
func (c *Computer) ActiveWindow(ctx context.Context) Lookup[string] {
	const op = "ActiveWindow"
	ctx, _, step := c.begin(ctx, op)

	sctx, cancel := context.WithTimeout(ctx, c.opts.ScriptTimeout)
	defer cancel()

	name, err := c.windows.FrontmostApp(sctx)
	if err != nil {
		err = scriptError(op, sctx, err, nil)
		step.End(err)
		return unknown("", err)
	}
	step.End(nil)
	return known(strings.TrimSpace(name))
}

// GetActiveWindowTitle returns the frontmost application's name, or "" on
// any failure.
func (c *Computer) GetActiveWindowTitle(ctx context.Context) string {
	return c.ActiveWindow(ctx).Value
}

// Focus activates the named application through OS scripting.
func (c *Computer) Focus(ctx context.Context, name string) Lookup[bool] {
	const op = "Focus"
	ctx, logger, step := c.begin(ctx, op, attribute.String("app", name))

	name = strings.TrimSpace(name)
	if name == "" {
		err := apperr.InvalidReqError(op, "app", fmt.Errorf("application name is empty"))
		step.End(err)
		return unknown(false, err)
	}

	sctx, cancel := context.WithTimeout(ctx, c.opts.ScriptTimeout)
	defer cancel()

	if err := c.windows.ActivateApp(sctx, name); err != nil {
		err = scriptError(op, sctx, err, map[string]any{apperr.MetaApp: name})
		step.End(err)
		return unknown(false, err)
	}
	logger.Debug("Focused application", zap.String(logg.App, name))
	step.End(nil)
	return known(true)
}

// FocusApplication reports whether the named application was activated.
func (c *Computer) FocusApplication(ctx context.Context, name string) bool {
	return c.Focus(ctx, name).Value
}

func scriptError(op string, sctx context.Context, err error, metadata map[string]any) error {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata[apperr.MetaStage] = apperr.StageScript
	code := apperr.CodeActionFailed
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(sctx.Err(), context.DeadlineExceeded) {
		code = apperr.CodeTimeout
	}
	return apperr.Wrap(op, code, err, metadata)
}
