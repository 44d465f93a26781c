package computer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mj1618/macos-computer/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestClick_ScalesToPhysical(t *testing.T) {
	h := newHarness(t, 2732, 1536)

	require.NoError(t, h.computer.Click(context.Background(), 100, 50, "right"))
	assert.Equal(t, []string{"click 200,100 right x1"}, h.input.Events)
}

func TestClick_ButtonCaseInsensitive(t *testing.T) {
	h := newHarness(t, 1366, 768)

	require.NoError(t, h.computer.Click(context.Background(), 1, 2, "Middle"))
	assert.Equal(t, []string{"click 1,2 middle x1"}, h.input.Events)
}

func TestPointerActions_RejectOutOfBounds(t *testing.T) {
	outside := []Point{{-1, 0}, {0, -1}, {LogicalWidth + 1, 10}, {10, LogicalHeight + 1}}
	actions := map[string]func(c *Computer, p Point) error{
		"click": func(c *Computer, p Point) error {
			return c.Click(context.Background(), p.X, p.Y, "left")
		},
		"double_click": func(c *Computer, p Point) error {
			return c.DoubleClick(context.Background(), p.X, p.Y)
		},
		"move": func(c *Computer, p Point) error {
			return c.Move(context.Background(), p.X, p.Y)
		},
		"scroll": func(c *Computer, p Point) error {
			return c.Scroll(context.Background(), p.X, p.Y, 0, 3)
		},
		"drag_first": func(c *Computer, p Point) error {
			return c.Drag(context.Background(), []Point{p, {10, 10}})
		},
		"drag_last": func(c *Computer, p Point) error {
			return c.Drag(context.Background(), []Point{{10, 10}, {20, 20}, p})
		},
	}

	for name, act := range actions {
		t.Run(name, func(t *testing.T) {
			for _, p := range outside {
				h := newHarness(t, 1920, 1080)
				err := act(h.computer, p)
				require.Error(t, err, "point %v", p)
				assert.ErrorIs(t, err, ErrOutOfBounds)
				assert.True(t, IsValidation(err))
				assert.Empty(t, h.input.Events, "no native event for %v", p)
			}
		})
	}
}

func TestPointerActions_AcceptInclusiveBounds(t *testing.T) {
	h := newHarness(t, 1366, 768)

	require.NoError(t, h.computer.Move(context.Background(), 0, 0))
	require.NoError(t, h.computer.Move(context.Background(), LogicalWidth, LogicalHeight))
	assert.Equal(t, []string{"move 0,0", "move 1366,768"}, h.input.Events)
}

func TestClick_UnknownButton(t *testing.T) {
	h := newHarness(t, 1366, 768)

	err := h.computer.Click(context.Background(), 10, 10, "wheel")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownButton)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
	assert.Empty(t, h.input.Events)
}

func TestDoubleClick(t *testing.T) {
	h := newHarness(t, 1366, 768)

	require.NoError(t, h.computer.DoubleClick(context.Background(), 30, 40))
	assert.Equal(t, []string{"click 30,40 left x2"}, h.input.Events)
}

func TestScroll_DeltaForm(t *testing.T) {
	tests := []struct {
		name             string
		scrollX, scrollY int
		want             []string
	}{
		{"vertical only", 0, -5, []string{"move 20,20", "vscroll -5"}},
		{"horizontal only", 4, 0, []string{"move 20,20", "hscroll 4"}},
		{"both axes", 2, 3, []string{"move 20,20", "vscroll 3", "hscroll 2"}},
		{"no delta", 0, 0, []string{"move 20,20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 1366, 768)
			require.NoError(t, h.computer.Scroll(context.Background(), 20, 20, tt.scrollX, tt.scrollY))
			assert.Equal(t, tt.want, h.input.Events)
		})
	}
}

func TestScrollDirection(t *testing.T) {
	tests := []struct {
		direction string
		want      string
	}{
		{"up", "vscroll 3"},
		{"down", "vscroll -3"},
		{"right", "hscroll 3"},
		{"left", "hscroll -3"},
		{"UP", "vscroll 3"},
	}
	for _, tt := range tests {
		t.Run(tt.direction, func(t *testing.T) {
			h := newHarness(t, 1366, 768)
			require.NoError(t, h.computer.ScrollDirection(context.Background(), tt.direction, 3, nil))
			assert.Equal(t, []string{tt.want}, h.input.Events)
		})
	}
}

func TestScrollDirection_MovesFirstWhenPointGiven(t *testing.T) {
	h := newHarness(t, 2732, 1536)

	require.NoError(t, h.computer.ScrollDirection(context.Background(), "down", 2, &Point{X: 10, Y: 10}))
	assert.Equal(t, []string{"move 20,20", "vscroll -2"}, h.input.Events)
}

func TestScrollDirection_Invalid(t *testing.T) {
	h := newHarness(t, 1366, 768)

	err := h.computer.ScrollDirection(context.Background(), "sideways", 3, nil)
	assert.ErrorIs(t, err, ErrInvalidDirection)

	err = h.computer.ScrollDirection(context.Background(), "up", -1, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = h.computer.ScrollDirection(context.Background(), "up", 1, &Point{X: -5, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.Empty(t, h.input.Events)
}

func TestScrollDirection_ZeroAmountIssuesNoScroll(t *testing.T) {
	h := newHarness(t, 1366, 768)

	require.NoError(t, h.computer.ScrollDirection(context.Background(), "up", 0, nil))
	assert.Empty(t, h.input.Events)
}

func TestDrag_RequiresTwoPoints(t *testing.T) {
	h := newHarness(t, 1366, 768)

	for _, path := range [][]Point{nil, {}, {{1, 1}}} {
		err := h.computer.Drag(context.Background(), path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPath)
	}
	assert.Empty(t, h.input.Events)
}

func TestDrag_PressMoveRelease(t *testing.T) {
	h := newHarness(t, 2732, 1536)

	require.NoError(t, h.computer.Drag(context.Background(), []Point{{10, 10}, {100, 50}}))
	assert.Equal(t, []string{"move 20,20", "down left", "move 200,100", "up left"}, h.input.Events)
}

func TestDrag_PacesMoves(t *testing.T) {
	h := newHarness(t, 1366, 768, WithDragStepDelay(50*time.Millisecond))

	require.NoError(t, h.computer.Drag(context.Background(), []Point{{1, 1}, {2, 2}, {3, 3}}))
	assert.Equal(t, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond}, h.sleeps)
}

func TestDrag_ReleasesWhenMoveFails(t *testing.T) {
	h := newHarness(t, 1366, 768)
	h.input.FailMoveAt = 2

	err := h.computer.Drag(context.Background(), []Point{{1, 1}, {2, 2}, {3, 3}})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeActionFailed, apperr.CodeOf(err))
	assert.Equal(t, []string{"move 1,1", "down left", "up left"}, h.input.Events)
}

func TestDrag_RecordsButtonEvents(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	h := newHarness(t, 1366, 768, WithTracer(tp.Tracer("test")))
	h.input.FailMoveAt = 2

	require.Error(t, h.computer.Drag(context.Background(), []Point{{1, 1}, {2, 2}}))

	var events []string
	for _, span := range recorder.Ended() {
		if span.Name() != "Drag" {
			continue
		}
		for _, e := range span.Events() {
			if e.Name != "exception" {
				events = append(events, e.Name)
			}
		}
	}
	assert.Equal(t, []string{"button_pressed", "button_released"}, events)
}

func TestDrag_ReportsReleaseFailure(t *testing.T) {
	h := newHarness(t, 1366, 768)
	h.input.FailUp = true

	err := h.computer.Drag(context.Background(), []Point{{1, 1}, {2, 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "release failed")
}

func TestFailSafe_BlocksActionsInCorner(t *testing.T) {
	corners := [][2]int{{0, 0}, {1919, 0}, {0, 1079}, {1919, 1079}}
	for _, corner := range corners {
		h := newHarness(t, 1920, 1080)
		h.input.X, h.input.Y = corner[0], corner[1]

		err := h.computer.Click(context.Background(), 100, 100, "left")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFailSafe), "corner %v", corner)
		assert.Equal(t, apperr.CodeCancelledByUser, apperr.CodeOf(err))
		assert.Empty(t, h.input.Events)
	}
}

func TestFailSafe_EdgeIsNotCorner(t *testing.T) {
	h := newHarness(t, 1920, 1080)
	h.input.X, h.input.Y = 0, 500

	require.NoError(t, h.computer.Move(context.Background(), 10, 10))
}

func TestFailSafe_Disabled(t *testing.T) {
	h := newHarness(t, 1920, 1080, WithFailSafe(false))
	h.input.X, h.input.Y = 0, 0

	require.NoError(t, h.computer.Click(context.Background(), 100, 100, "left"))
}

func TestFailSafe_AbortsDragButReleases(t *testing.T) {
	h := newHarness(t, 1366, 768)

	// The path passes through the top-left corner with the button down.
	err := h.computer.Drag(context.Background(), []Point{{10, 10}, {0, 0}, {100, 100}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailSafe)
	assert.Equal(t, []string{"move 10,10", "down left", "move 0,0", "up left"}, h.input.Events)
}

func TestPause_AfterEachNativeAction(t *testing.T) {
	h := newHarness(t, 1366, 768, WithPause(100*time.Millisecond))

	require.NoError(t, h.computer.Scroll(context.Background(), 10, 10, 1, 1))
	assert.Len(t, h.sleeps, 3)
	for _, d := range h.sleeps {
		assert.Equal(t, 100*time.Millisecond, d)
	}
}

func TestCursorPosition(t *testing.T) {
	h := newHarness(t, 2732, 1536)
	h.input.X, h.input.Y = 200, 100

	p, err := h.computer.CursorPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Point{X: 100, Y: 50}, p)

	h.input.X, h.input.Y = 99999, -4
	p, err = h.computer.CursorPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Point{X: LogicalWidth, Y: 0}, p)
}
