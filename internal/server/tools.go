package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/macos-computer/internal/actions"
)

func (s *Server) registerTools() {
	// get_environment
	s.addTool(
		mcp.NewTool(actions.GetEnvironment,
			mcp.WithDescription("Report the kind of machine being controlled (always 'mac')"),
		),
		s.actionHandler(actions.GetEnvironment),
	)

	// get_dimensions
	s.addTool(
		mcp.NewTool(actions.GetDimensions,
			mcp.WithDescription("Report the physical screen size in pixels. Coordinates for every other tool use the 1366x768 logical canvas."),
		),
		s.actionHandler(actions.GetDimensions),
	)

	// screenshot
	s.addTool(
		mcp.NewTool(actions.Screenshot,
			mcp.WithDescription("Capture the screen as a 1366x768 PNG on the logical canvas"),
		),
		s.handleScreenshot,
	)

	// click
	s.addTool(
		mcp.NewTool(actions.Click,
			mcp.WithDescription("Click at logical coordinates (0-1366, 0-768)"),
			mcp.WithNumber("x", mcp.Description("Logical X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Logical Y coordinate"), mcp.Required()),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle (default: left)")),
			mcp.WithBoolean("double", mcp.Description("Double-click with the left button")),
		),
		s.actionHandler(actions.Click),
	)

	// double_click
	s.addTool(
		mcp.NewTool(actions.DoubleClick,
			mcp.WithDescription("Double-click the left button at logical coordinates"),
			mcp.WithNumber("x", mcp.Description("Logical X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Logical Y coordinate"), mcp.Required()),
		),
		s.actionHandler(actions.DoubleClick),
	)

	// move
	s.addTool(
		mcp.NewTool(actions.Move,
			mcp.WithDescription("Move the pointer to logical coordinates"),
			mcp.WithNumber("x", mcp.Description("Logical X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Logical Y coordinate"), mcp.Required()),
		),
		s.actionHandler(actions.Move),
	)

	// scroll
	s.addTool(
		mcp.NewTool(actions.Scroll,
			mcp.WithDescription("Scroll at a point by explicit deltas (scroll_x, scroll_y; positive is right/up), or towards a direction by amount steps"),
			mcp.WithNumber("x", mcp.Description("Logical X coordinate to scroll at")),
			mcp.WithNumber("y", mcp.Description("Logical Y coordinate to scroll at")),
			mcp.WithNumber("scroll_x", mcp.Description("Horizontal delta, positive scrolls right")),
			mcp.WithNumber("scroll_y", mcp.Description("Vertical delta, positive scrolls up")),
			mcp.WithString("direction", mcp.Description("Scroll direction: up, down, left, right")),
			mcp.WithNumber("amount", mcp.Description("Scroll steps for direction (default: 3)")),
		),
		s.actionHandler(actions.Scroll),
	)

	// type
	s.addTool(
		mcp.NewTool(actions.Type,
			mcp.WithDescription("Type text literally at the current focus"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.actionHandler(actions.Type),
	)

	// key
	s.addTool(
		mcp.NewTool(actions.Key,
			mcp.WithDescription("Tap each key in order, one at a time (key names are passed through unchanged)"),
			mcp.WithArray("keys", mcp.Description("Key names, e.g. ['tab', 'enter']"), mcp.Required()),
		),
		s.actionHandler(actions.Key),
	)

	// keypress
	s.addTool(
		mcp.NewTool(actions.Keypress,
			mcp.WithDescription("Press keys together as a chord after alias mapping (cmd, alt, esc, return, ...). A single key is a plain tap."),
			mcp.WithArray("keys", mcp.Description("Key names, e.g. ['cmd', 'c']")),
			mcp.WithString("combo", mcp.Description("Alternative combo string, e.g. 'cmd+shift+t'")),
		),
		s.actionHandler(actions.Keypress),
	)

	// drag
	s.addTool(
		mcp.NewTool(actions.Drag,
			mcp.WithDescription("Press the left button at the first point, move through the rest and release"),
			mcp.WithArray("path", mcp.Description("At least two points as [[x, y], ...] or [{x, y}, ...]"), mcp.Required()),
		),
		s.actionHandler(actions.Drag),
	)

	// wait
	s.addTool(
		mcp.NewTool(actions.Wait,
			mcp.WithDescription("Sleep for a number of milliseconds"),
			mcp.WithNumber("ms", mcp.Description("Milliseconds to wait (default: 1000)")),
		),
		s.actionHandler(actions.Wait),
	)

	// get_current_url
	s.addTool(
		mcp.NewTool(actions.GetCurrentURL,
			mcp.WithDescription("Always empty: native desktop control has no current URL"),
		),
		s.actionHandler(actions.GetCurrentURL),
	)

	// get_running_applications
	s.addTool(
		mcp.NewTool(actions.GetRunningApplications,
			mcp.WithDescription("List running process names, sorted and de-duplicated"),
		),
		s.actionHandler(actions.GetRunningApplications),
	)

	// get_active_window_title
	s.addTool(
		mcp.NewTool(actions.GetActiveWindowTitle,
			mcp.WithDescription("Name of the frontmost application, or empty when unknown"),
		),
		s.actionHandler(actions.GetActiveWindowTitle),
	)

	// focus_application
	s.addTool(
		mcp.NewTool(actions.FocusApplication,
			mcp.WithDescription("Bring an application to the front by name"),
			mcp.WithString("app", mcp.Description("Application name (e.g. 'Safari')"), mcp.Required()),
		),
		s.actionHandler(actions.FocusApplication),
	)

	// check_permissions
	s.addTool(
		mcp.NewTool(actions.CheckPermissions,
			mcp.WithDescription("Report whether accessibility permission for input injection is granted, with remediation steps"),
		),
		s.actionHandler(actions.CheckPermissions),
	)

	// cursor_position
	s.addTool(
		mcp.NewTool(actions.CursorPosition,
			mcp.WithDescription("Current pointer position on the logical canvas"),
		),
		s.actionHandler(actions.CursorPosition),
	)

	// do (batch)
	s.addTool(
		mcp.NewTool("do",
			mcp.WithDescription("Execute multiple actions in a batch. Each step is an object with one action name mapped to its arguments, e.g. {\"click\": {\"x\": 10, \"y\": 20}}"),
			mcp.WithArray("steps", mcp.Description("Array of step objects"), mcp.Required()),
			mcp.WithBoolean("stop-on-error", mcp.Description("Stop on first error (default: true)")),
		),
		s.handleDo,
	)
}
