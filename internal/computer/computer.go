// Package computer implements the computer-use contract on top of the
// platform backends: it validates logical coordinates, scales them to the
// physical screen and forwards every action to the native input facility.
package computer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mj1618/macos-computer/internal/platform"
	"github.com/mj1618/macos-computer/pkg/apperr"
	"github.com/mj1618/macos-computer/pkg/logg"
	"github.com/mj1618/macos-computer/pkg/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	computerName   = "Computer"
	computerTracer = "computer"
)

// Environment names the kind of machine being controlled.
type Environment string

const (
	EnvironmentWindows Environment = "windows"
	EnvironmentMac     Environment = "mac"
	EnvironmentLinux   Environment = "linux"
	EnvironmentBrowser Environment = "browser"
)

// Options configure a single Computer. Nothing here is process-global, so
// several instances (and tests) can run side by side.
type Options struct {
	// FailSafe aborts an action when the pointer sits in a screen corner.
	FailSafe bool
	// Pause is slept after every native action.
	Pause time.Duration
	// DragStepDelay is slept between the moves of a drag.
	DragStepDelay time.Duration
	// ScriptTimeout bounds every OS scripting call.
	ScriptTimeout time.Duration

	Logger *zap.Logger
	Tracer trace.Tracer
	Sleep  func(time.Duration)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the stock pacing and safety settings.
func DefaultOptions() Options {
	return Options{
		FailSafe:      true,
		Pause:         100 * time.Millisecond,
		DragStepDelay: 50 * time.Millisecond,
		ScriptTimeout: 5 * time.Second,
		Logger:        zap.NewNop(),
		Tracer:        otel.Tracer(computerTracer),
		Sleep:         time.Sleep,
	}
}

func WithFailSafe(enabled bool) Option {
	return func(o *Options) { o.FailSafe = enabled }
}

func WithPause(d time.Duration) Option {
	return func(o *Options) { o.Pause = d }
}

func WithDragStepDelay(d time.Duration) Option {
	return func(o *Options) { o.DragStepDelay = d }
}

func WithScriptTimeout(d time.Duration) Option {
	return func(o *Options) { o.ScriptTimeout = d }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(o *Options) {
		if tracer != nil {
			o.Tracer = tracer
		}
	}
}

// WithSleep replaces time.Sleep for pacing and Wait.
func WithSleep(sleep func(time.Duration)) Option {
	return func(o *Options) {
		if sleep != nil {
			o.Sleep = sleep
		}
	}
}

// Computer controls the local macOS desktop. Calls are synchronous and must
// be serialized by the caller.
type Computer struct {
	inputter    platform.Inputter
	screen      platform.Screenshotter
	processes   platform.ProcessLister
	windows     platform.WindowManager
	permissions platform.PermissionChecker

	geometry Geometry
	opts     Options
	logger   *zap.Logger
	tracer   trace.Tracer
	session  string
}

// New builds a Computer over the given platform backends. It probes the
// input permission, reads the physical screen size once and derives the
// scale factors.
func New(provider *platform.Provider, options ...Option) (*Computer, error) {
	const op = "New"

	if err := provider.Validate(); err != nil {
		return nil, apperr.Wrap(op, apperr.CodeUnavailable, err, map[string]any{
			apperr.MetaStage: apperr.StageStartup,
		})
	}

	opts := DefaultOptions()
	for _, apply := range options {
		apply(&opts)
	}

	session := uuid.NewString()
	c := &Computer{
		inputter:    provider.Inputter,
		screen:      provider.Screenshotter,
		processes:   provider.ProcessLister,
		windows:     provider.WindowManager,
		permissions: provider.PermissionChecker,
		opts:        opts,
		logger:      opts.Logger.With(zap.String(logg.Layer, computerName), zap.String(logg.Session, session)),
		tracer:      opts.Tracer,
		session:     session,
	}

	logger := c.logger.With(zap.String(logg.Operation, op))

	if status := probePermission(c.permissions); !status.Granted() {
		logger.Warn("Input injection permission not confirmed",
			zap.String("state", string(status.State)),
			zap.String("message", status.Message),
			zap.Strings("remediation", status.Remediation))
	}

	width, height := c.inputter.ScreenSize()
	if width <= 0 || height <= 0 {
		return nil, apperr.Wrap(op, apperr.CodeUnavailable,
			fmt.Errorf("invalid screen size %dx%d", width, height),
			map[string]any{apperr.MetaStage: apperr.StageStartup})
	}
	c.geometry = NewGeometry(width, height)

	logger.Debug("Computer ready",
		zap.Int("physical_width", width),
		zap.Int("physical_height", height),
		zap.Float64("scale_x", c.geometry.ScaleX),
		zap.Float64("scale_y", c.geometry.ScaleY),
		zap.Bool("failsafe", opts.FailSafe),
		zap.Duration("pause", opts.Pause))

	return c, nil
}

// Session identifies this instance in logs.
func (c *Computer) Session() string {
	return c.session
}

// Geometry returns the screen geometry captured at construction.
func (c *Computer) Geometry() Geometry {
	return c.geometry
}

// GetEnvironment always reports mac.
func (c *Computer) GetEnvironment() Environment {
	return EnvironmentMac
}

// GetDimensions returns the physical screen size.
func (c *Computer) GetDimensions() (int, int) {
	return c.geometry.PhysicalWidth, c.geometry.PhysicalHeight
}

// GetCurrentURL is meaningless for native desktop control and always returns "".
func (c *Computer) GetCurrentURL(_ context.Context) string {
	return ""
}

// Wait blocks for d. It is not cancellable.
func (c *Computer) Wait(ctx context.Context, d time.Duration) {
	const op = "Wait"
	if d < 0 {
		d = 0
	}
	_, logger, step := c.begin(ctx, op, attribute.Int64("duration_ms", d.Milliseconds()))
	logger.Debug("Waiting", zap.Duration("duration", d))
	c.opts.Sleep(d)
	step.End(nil)
}

func (c *Computer) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, *zap.Logger, *tracing.Span) {
	logger := c.logger.With(zap.String(logg.Operation, op))
	ctx, step := tracing.StartSpan(ctx, c.tracer, logger, op, attrs...)
	return ctx, logger, step
}

// toPhysical validates a logical point and scales it.
func (c *Computer) toPhysical(op string, p Point) (Point, error) {
	if !c.geometry.Contains(p.X, p.Y) {
		return Point{}, apperr.Wrap(op, apperr.CodeInvalidArgument,
			fmt.Errorf("%w: %s not within %dx%d", ErrOutOfBounds, p, LogicalWidth, LogicalHeight),
			map[string]any{
				apperr.MetaStage: apperr.StageValidation,
				apperr.MetaX:     p.X,
				apperr.MetaY:     p.Y,
			})
	}
	x, y := c.geometry.Scale(p.X, p.Y)
	return Point{X: x, Y: y}, nil
}

// guard enforces the fail-safe corner check.
func (c *Computer) guard(op string) error {
	if !c.opts.FailSafe {
		return nil
	}
	x, y := c.inputter.Location()
	maxX, maxY := c.geometry.PhysicalWidth-1, c.geometry.PhysicalHeight-1
	atEdgeX := x <= 0 || x >= maxX
	atEdgeY := y <= 0 || y >= maxY
	if atEdgeX && atEdgeY {
		return apperr.Wrap(op, apperr.CodeCancelledByUser, ErrFailSafe, map[string]any{
			apperr.MetaStage: apperr.StageInput,
			apperr.MetaX:     x,
			apperr.MetaY:     y,
		})
	}
	return nil
}

// native runs one input event behind the fail-safe and pauses afterwards.
func (c *Computer) native(op, action string, fn func() error) error {
	if err := c.guard(op); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return apperr.Wrap(op, apperr.CodeActionFailed, err, map[string]any{
			apperr.MetaStage:  apperr.StageInput,
			apperr.MetaAction: action,
		})
	}
	c.pause()
	return nil
}

func (c *Computer) pause() {
	if c.opts.Pause > 0 {
		c.opts.Sleep(c.opts.Pause)
	}
}
