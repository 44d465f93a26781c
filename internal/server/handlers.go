package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/macos-computer/internal/actions"
	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/internal/output"
	"github.com/mj1618/macos-computer/pkg/logg"
	"go.uber.org/zap"
)

// resultToText serializes a result to YAML for the MCP response.
func resultToText(result interface{}) string {
	text, err := output.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: false\nerror: %s", err)
	}
	return text
}

// actionHandler locks the computer, executes action and reports failures as
// tool errors rather than protocol errors.
func (s *Server) actionHandler(action string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.execute(ctx, action, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(resultToText(result)), nil
		}
		return mcp.NewToolResultText(resultToText(result)), nil
	}
}

func (s *Server) execute(ctx context.Context, action string, params map[string]interface{}) (actions.Result, error) {
	logger := s.logger.With(zap.String(logg.Action, action))

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := actions.Execute(ctx, s.computer, action, params)
	if err != nil {
		logger.Info("Tool call failed", zap.String("code", result.Code), zap.Error(err))
		return result, err
	}
	logger.Debug("Tool call completed")
	return result, nil
}

// handleScreenshot returns the capture as image content next to a short
// YAML summary.
func (s *Server) handleScreenshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.execute(ctx, actions.Screenshot, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(resultToText(result)), nil
	}

	data := strings.TrimPrefix(result.Image, computer.DataURLPrefix)
	result.Image = ""
	return mcp.NewToolResultImage(resultToText(result), data, "image/png"), nil
}

func (s *Server) handleDo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := actions.Params(request.GetArguments())
	stopOnError := boolArg(params, "stop-on-error", true)

	rawSteps, ok := params["steps"].([]interface{})
	if !ok || len(rawSteps) == 0 {
		return mcp.NewToolResultError("steps must be a non-empty array of step objects"), nil
	}

	steps := make([]actions.Step, 0, len(rawSteps))
	for i, raw := range rawSteps {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("step %d: expected an object, got %T", i+1, raw)), nil
		}
		step := make(actions.Step, len(obj))
		for action, args := range obj {
			if args == nil {
				step[action] = nil
				continue
			}
			argMap, ok := args.(map[string]interface{})
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("step %d: %s arguments must be an object, got %T", i+1, action, args)), nil
			}
			step[action] = argMap
		}
		steps = append(steps, step)
	}

	s.mu.Lock()
	batch := actions.RunBatch(ctx, s.computer, steps, stopOnError)
	s.mu.Unlock()

	if !batch.OK {
		return mcp.NewToolResultError(resultToText(batch)), nil
	}
	return mcp.NewToolResultText(resultToText(batch)), nil
}

func boolArg(params actions.Params, key string, defaultVal bool) bool {
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
