// Package actions executes named computer-use actions from loosely typed
// parameters. The CLI batch command and the MCP server both dispatch through
// it so that every surface shares one parameter contract.
package actions

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/pkg/apperr"
)

// Action names, shared by batch steps and MCP tools.
const (
	GetEnvironment         = "get_environment"
	GetDimensions          = "get_dimensions"
	Screenshot             = "screenshot"
	Click                  = "click"
	DoubleClick            = "double_click"
	Move                   = "move"
	Scroll                 = "scroll"
	Type                   = "type"
	Key                    = "key"
	Keypress               = "keypress"
	Drag                   = "drag"
	Wait                   = "wait"
	GetCurrentURL          = "get_current_url"
	GetRunningApplications = "get_running_applications"
	GetActiveWindowTitle   = "get_active_window_title"
	FocusApplication       = "focus_application"
	CheckPermissions       = "check_permissions"
	CursorPosition         = "cursor_position"
)

const (
	defaultScrollAmount = 3
	defaultWaitMS       = 1000
)

// Result is the output of a single action.
type Result struct {
	Step   int    `yaml:"step,omitempty"   json:"step,omitempty"`
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	Error  string `yaml:"error,omitempty"  json:"error,omitempty"`
	Code   string `yaml:"code,omitempty"   json:"code,omitempty"`

	At        *computer.Point  `yaml:"at,omitempty"        json:"at,omitempty"`
	Path      []computer.Point `yaml:"path,omitempty"      json:"path,omitempty"`
	Button    string           `yaml:"button,omitempty"    json:"button,omitempty"`
	Direction string           `yaml:"direction,omitempty" json:"direction,omitempty"`
	Amount    int              `yaml:"amount,omitempty"    json:"amount,omitempty"`
	ScrollX   int              `yaml:"scroll_x,omitempty"  json:"scroll_x,omitempty"`
	ScrollY   int              `yaml:"scroll_y,omitempty"  json:"scroll_y,omitempty"`
	Text      string           `yaml:"text,omitempty"      json:"text,omitempty"`
	Keys      []string         `yaml:"keys,omitempty"      json:"keys,omitempty"`
	WaitedMS  int64            `yaml:"waited_ms,omitempty" json:"waited_ms,omitempty"`

	Environment  string   `yaml:"environment,omitempty"  json:"environment,omitempty"`
	Width        int      `yaml:"width,omitempty"        json:"width,omitempty"`
	Height       int      `yaml:"height,omitempty"       json:"height,omitempty"`
	Image        string   `yaml:"image,omitempty"        json:"image,omitempty"`
	URL          *string  `yaml:"url,omitempty"          json:"url,omitempty"`
	Title        *string  `yaml:"title,omitempty"        json:"title,omitempty"`
	Applications []string `yaml:"applications,omitempty" json:"applications,omitempty"`
	App          string   `yaml:"app,omitempty"          json:"app,omitempty"`
	Focused      *bool    `yaml:"focused,omitempty"      json:"focused,omitempty"`
	Known        *bool    `yaml:"known,omitempty"        json:"known,omitempty"`
	Reason       string   `yaml:"reason,omitempty"       json:"reason,omitempty"`

	Permission *computer.PermissionStatus `yaml:"permission,omitempty" json:"permission,omitempty"`
}

type executor func(ctx context.Context, c *computer.Computer, params Params) (Result, error)

var executors = map[string]executor{
	GetEnvironment:         executeGetEnvironment,
	GetDimensions:          executeGetDimensions,
	Screenshot:             executeScreenshot,
	Click:                  executeClick,
	DoubleClick:            executeDoubleClick,
	Move:                   executeMove,
	Scroll:                 executeScroll,
	Type:                   executeType,
	Key:                    executeKey,
	Keypress:               executeKeypress,
	Drag:                   executeDrag,
	Wait:                   executeWait,
	GetCurrentURL:          executeGetCurrentURL,
	GetRunningApplications: executeGetRunningApplications,
	GetActiveWindowTitle:   executeGetActiveWindowTitle,
	FocusApplication:       executeFocusApplication,
	CheckPermissions:       executeCheckPermissions,
	CursorPosition:         executeCursorPosition,
}

// Names lists the supported actions in sorted order.
func Names() []string {
	names := make([]string, 0, len(executors))
	for name := range executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize maps "double-click" style names onto action names.
func Normalize(action string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(action)), "-", "_")
}

// Execute runs one action. The returned Result is always populated; on
// failure OK is false and Error/Code describe the cause.
func Execute(ctx context.Context, c *computer.Computer, action string, params Params) (Result, error) {
	name := Normalize(action)
	exec, ok := executors[name]
	if !ok {
		err := apperr.InvalidReqError("Execute", "action",
			fmt.Errorf("unknown action %q (supported: %s)", action, strings.Join(Names(), ", ")))
		return fail(Result{Action: action}, err)
	}
	if params == nil {
		params = Params{}
	}

	result, err := exec(ctx, c, params)
	result.Action = name
	if err != nil {
		return fail(result, err)
	}
	result.OK = true
	return result, nil
}

func fail(result Result, err error) (Result, error) {
	result.OK = false
	result.Error = err.Error()
	result.Code = apperr.CodeOf(err)
	return result, err
}

func executeGetEnvironment(_ context.Context, c *computer.Computer, _ Params) (Result, error) {
	return Result{Environment: string(c.GetEnvironment())}, nil
}

func executeGetDimensions(_ context.Context, c *computer.Computer, _ Params) (Result, error) {
	w, h := c.GetDimensions()
	return Result{Width: w, Height: h}, nil
}

func executeScreenshot(ctx context.Context, c *computer.Computer, _ Params) (Result, error) {
	url, err := c.Screenshot(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Image: url, Width: computer.LogicalWidth, Height: computer.LogicalHeight}, nil
}

func executeClick(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	const op = "Click"
	x, err := requireInt(op, params, "x")
	if err != nil {
		return Result{}, err
	}
	y, err := requireInt(op, params, "y")
	if err != nil {
		return Result{}, err
	}
	result := Result{At: &computer.Point{X: x, Y: y}}

	if boolParam(params, "double", false) {
		result.Button = "left"
		return result, c.DoubleClick(ctx, x, y)
	}
	result.Button = strings.ToLower(stringParam(params, "button", "left"))
	return result, c.Click(ctx, x, y, result.Button)
}

func executeDoubleClick(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	const op = "DoubleClick"
	x, err := requireInt(op, params, "x")
	if err != nil {
		return Result{}, err
	}
	y, err := requireInt(op, params, "y")
	if err != nil {
		return Result{}, err
	}
	return Result{At: &computer.Point{X: x, Y: y}, Button: "left"}, c.DoubleClick(ctx, x, y)
}

func executeMove(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	const op = "Move"
	x, err := requireInt(op, params, "x")
	if err != nil {
		return Result{}, err
	}
	y, err := requireInt(op, params, "y")
	if err != nil {
		return Result{}, err
	}
	return Result{At: &computer.Point{X: x, Y: y}}, c.Move(ctx, x, y)
}

// executeScroll supports two forms: a direction with an amount (default 3),
// optionally at a point, or explicit scroll_x/scroll_y deltas at a point.
func executeScroll(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	const op = "Scroll"
	at, err := optionalPoint(op, params)
	if err != nil {
		return Result{}, err
	}

	if direction := stringParam(params, "direction", ""); direction != "" {
		amount, err := intParam(op, params, "amount", defaultScrollAmount)
		if err != nil {
			return Result{}, err
		}
		result := Result{At: at, Direction: strings.ToLower(direction), Amount: amount}
		return result, c.ScrollDirection(ctx, direction, amount, at)
	}

	if at == nil {
		return Result{}, apperr.InvalidReqError(op, "x",
			fmt.Errorf("x and y are required unless direction is given"))
	}
	scrollX, err := intParam(op, params, "scroll_x", 0)
	if err != nil {
		return Result{}, err
	}
	scrollY, err := intParam(op, params, "scroll_y", 0)
	if err != nil {
		return Result{}, err
	}
	result := Result{At: at, ScrollX: scrollX, ScrollY: scrollY}
	return result, c.Scroll(ctx, at.X, at.Y, scrollX, scrollY)
}

func executeType(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	text := stringParam(params, "text", "")
	return Result{Text: text}, c.Type(ctx, text)
}

func executeKey(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	keys := stringsParam(params, "keys")
	if len(keys) == 0 {
		keys = stringsParam(params, "key")
	}
	if len(keys) == 0 {
		return Result{}, apperr.InvalidReqError("Key", "keys", fmt.Errorf("at least one key is required"))
	}
	return Result{Keys: keys}, c.Key(ctx, keys...)
}

func executeKeypress(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	keys := stringsParam(params, "keys")
	if combo := stringParam(params, "combo", ""); combo != "" {
		keys = append(keys, computer.ParseCombo(combo)...)
	}
	return Result{Keys: computer.MapKeys(keys)}, c.Keypress(ctx, keys)
}

func executeDrag(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	path, err := pathParam("Drag", params, "path")
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path}, c.Drag(ctx, path)
}

func executeWait(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	ms, err := intParam("Wait", params, "ms", defaultWaitMS)
	if err != nil {
		return Result{}, err
	}
	if ms < 0 {
		ms = 0
	}
	c.Wait(ctx, time.Duration(ms)*time.Millisecond)
	return Result{WaitedMS: int64(ms)}, nil
}

func executeGetCurrentURL(ctx context.Context, c *computer.Computer, _ Params) (Result, error) {
	url := c.GetCurrentURL(ctx)
	return Result{URL: &url}, nil
}

func executeGetRunningApplications(ctx context.Context, c *computer.Computer, _ Params) (Result, error) {
	lookup := c.RunningApplications(ctx)
	return withLookup(Result{Applications: lookup.Value}, lookup.Err), nil
}

func executeGetActiveWindowTitle(ctx context.Context, c *computer.Computer, _ Params) (Result, error) {
	lookup := c.ActiveWindow(ctx)
	title := lookup.Value
	return withLookup(Result{Title: &title}, lookup.Err), nil
}

func executeFocusApplication(ctx context.Context, c *computer.Computer, params Params) (Result, error) {
	app := stringParam(params, "app", "")
	lookup := c.Focus(ctx, app)
	focused := lookup.Value
	return withLookup(Result{App: app, Focused: &focused}, lookup.Err), nil
}

func executeCheckPermissions(ctx context.Context, c *computer.Computer, _ Params) (Result, error) {
	status := c.Permissions(ctx)
	return Result{Permission: &status}, nil
}

func executeCursorPosition(ctx context.Context, c *computer.Computer, _ Params) (Result, error) {
	p, err := c.CursorPosition(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{At: &p}, nil
}

// withLookup records whether a best-effort query succeeded. Lookups never
// fail the action; the cause is reported as a reason.
func withLookup(result Result, err error) Result {
	known := err == nil
	result.Known = &known
	if err != nil {
		result.Reason = err.Error()
	}
	return result
}
