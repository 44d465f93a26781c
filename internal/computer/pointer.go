package computer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mj1618/macos-computer/internal/platform"
	"github.com/mj1618/macos-computer/pkg/apperr"
	"github.com/mj1618/macos-computer/pkg/logg"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Click clicks button at the logical point (x, y).
func (c *Computer) Click(ctx context.Context, x, y int, button string) (err error) {
	const op = "Click"
	_, logger, step := c.begin(ctx, op,
		attribute.Int("x", x), attribute.Int("y", y), attribute.String("button", button))
	defer func() {
		step.End(err)
	}()

	target, err := c.toPhysical(op, Point{X: x, Y: y})
	if err != nil {
		return err
	}
	btn, err := platform.ParseMouseButton(button)
	if err != nil {
		return apperr.Wrap(op, apperr.CodeInvalidArgument, fmt.Errorf("%w: %q", ErrUnknownButton, button), map[string]any{
			apperr.MetaStage:  apperr.StageValidation,
			apperr.MetaButton: button,
		})
	}

	logger.Debug("Clicking", zap.Int("px", target.X), zap.Int("py", target.Y), zap.Stringer(logg.Button, btn))
	return c.native(op, "click", func() error {
		return c.inputter.Click(target.X, target.Y, btn, 1)
	})
}

// DoubleClick double-clicks the left button at the logical point (x, y).
func (c *Computer) DoubleClick(ctx context.Context, x, y int) (err error) {
	const op = "DoubleClick"
	_, logger, step := c.begin(ctx, op, attribute.Int("x", x), attribute.Int("y", y))
	defer func() {
		step.End(err)
	}()

	target, err := c.toPhysical(op, Point{X: x, Y: y})
	if err != nil {
		return err
	}

	logger.Debug("Double-clicking", zap.Int("px", target.X), zap.Int("py", target.Y))
	return c.native(op, "double_click", func() error {
		return c.inputter.Click(target.X, target.Y, platform.MouseLeft, 2)
	})
}

// Move moves the pointer to the logical point (x, y).
func (c *Computer) Move(ctx context.Context, x, y int) (err error) {
	const op = "Move"
	_, logger, step := c.begin(ctx, op, attribute.Int("x", x), attribute.Int("y", y))
	defer func() {
		step.End(err)
	}()

	target, err := c.toPhysical(op, Point{X: x, Y: y})
	if err != nil {
		return err
	}

	logger.Debug("Moving pointer", zap.Int("px", target.X), zap.Int("py", target.Y))
	return c.native(op, "move", func() error {
		return c.inputter.MoveMouse(target.X, target.Y)
	})
}

// Scroll moves the pointer to (x, y) and scrolls by the given deltas.
// Positive scrollY is up, positive scrollX is right. A zero delta issues no
// event on that axis.
func (c *Computer) Scroll(ctx context.Context, x, y, scrollX, scrollY int) (err error) {
	const op = "Scroll"
	_, _, step := c.begin(ctx, op,
		attribute.Int("x", x), attribute.Int("y", y),
		attribute.Int("scroll_x", scrollX), attribute.Int("scroll_y", scrollY))
	defer func() {
		step.End(err)
	}()

	at := Point{X: x, Y: y}
	target, err := c.toPhysical(op, at)
	if err != nil {
		return err
	}
	return c.scroll(op, &target, scrollX, scrollY)
}

// ScrollDirection scrolls amount steps towards direction (up, down, left,
// right). When at is non-nil the pointer moves there first.
func (c *Computer) ScrollDirection(ctx context.Context, direction string, amount int, at *Point) (err error) {
	const op = "ScrollDirection"
	_, _, step := c.begin(ctx, op,
		attribute.String("direction", direction), attribute.Int("amount", amount))
	defer func() {
		step.End(err)
	}()

	if amount < 0 {
		return apperr.InvalidReqError(op, "amount", fmt.Errorf("%w: %d", ErrInvalidAmount, amount))
	}
	dx, dy, err := directionDelta(direction, amount)
	if err != nil {
		return apperr.InvalidReqError(op, "direction", err)
	}

	var target *Point
	if at != nil {
		p, err := c.toPhysical(op, *at)
		if err != nil {
			return err
		}
		target = &p
	}
	return c.scroll(op, target, dx, dy)
}

// directionDelta maps a direction name to signed (horizontal, vertical)
// scroll deltas.
func directionDelta(direction string, amount int) (dx, dy int, err error) {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "up":
		return 0, amount, nil
	case "down":
		return 0, -amount, nil
	case "right":
		return amount, 0, nil
	case "left":
		return -amount, 0, nil
	default:
		return 0, 0, fmt.Errorf("%w %q: use up, down, left, or right", ErrInvalidDirection, direction)
	}
}

func (c *Computer) scroll(op string, target *Point, dx, dy int) error {
	logger := c.logger.With(zap.String(logg.Operation, op))
	if target != nil {
		if err := c.native(op, "move", func() error {
			return c.inputter.MoveMouse(target.X, target.Y)
		}); err != nil {
			return err
		}
	}
	logger.Debug("Scrolling", zap.Int("dx", dx), zap.Int("dy", dy))
	if dy != 0 {
		if err := c.native(op, "scroll_vertical", func() error {
			return c.inputter.ScrollVertical(dy)
		}); err != nil {
			return err
		}
	}
	if dx != 0 {
		if err := c.native(op, "scroll_horizontal", func() error {
			return c.inputter.ScrollHorizontal(dx)
		}); err != nil {
			return err
		}
	}
	return nil
}

// Drag presses the left button at path[0], moves through the remaining
// points and releases. Every point is validated before the first event and
// the button is released even when a move fails.
func (c *Computer) Drag(ctx context.Context, path []Point) (err error) {
	const op = "Drag"
	_, logger, step := c.begin(ctx, op, attribute.Int("points", len(path)))
	defer func() {
		step.End(err)
	}()

	if len(path) < 2 {
		return apperr.InvalidReqError(op, "path", fmt.Errorf("%w, got %d", ErrInvalidPath, len(path)))
	}
	physical := make([]Point, len(path))
	for i, p := range path {
		scaled, err := c.toPhysical(op, p)
		if err != nil {
			return err
		}
		physical[i] = scaled
	}

	start := physical[0]
	if err := c.native(op, "move", func() error {
		return c.inputter.MoveMouse(start.X, start.Y)
	}); err != nil {
		return err
	}
	if err := c.native(op, "mouse_down", func() error {
		return c.inputter.MouseDown(platform.MouseLeft)
	}); err != nil {
		return err
	}
	step.AddEvent("button_pressed", attribute.Int("x", start.X), attribute.Int("y", start.Y))
	defer func() {
		if upErr := c.inputter.MouseUp(platform.MouseLeft); upErr != nil {
			err = errors.Join(err, apperr.Wrap(op, apperr.CodeActionFailed, upErr, map[string]any{
				apperr.MetaStage:  apperr.StageInput,
				apperr.MetaAction: "mouse_up",
			}))
			return
		}
		step.AddEvent("button_released")
		c.pause()
	}()

	logger.Debug("Dragging", zap.Int("points", len(physical)))
	for _, p := range physical[1:] {
		if err := c.guard(op); err != nil {
			return err
		}
		if err := c.inputter.MoveMouse(p.X, p.Y); err != nil {
			return apperr.Wrap(op, apperr.CodeActionFailed, err, map[string]any{
				apperr.MetaStage:  apperr.StageInput,
				apperr.MetaAction: "move",
				apperr.MetaX:      p.X,
				apperr.MetaY:      p.Y,
			})
		}
		if c.opts.DragStepDelay > 0 {
			c.opts.Sleep(c.opts.DragStepDelay)
		}
	}
	return nil
}

// CursorPosition reports the pointer position on the logical canvas,
// clamped to its bounds.
func (c *Computer) CursorPosition(ctx context.Context) (Point, error) {
	const op = "CursorPosition"
	_, _, step := c.begin(ctx, op)
	px, py := c.inputter.Location()
	x, y := c.geometry.Unscale(px, py)
	step.End(nil)
	return Point{X: clamp(x, 0, LogicalWidth), Y: clamp(y, 0, LogicalHeight)}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
