package actions

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mj1618/macos-computer/internal/computer"
	"github.com/mj1618/macos-computer/pkg/apperr"
)

// Params are the loosely typed arguments of one action, as decoded from
// YAML steps or MCP tool calls.
type Params map[string]interface{}

func stringParam(params Params, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that YAML may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// intParam reads an optional integer argument. A present but malformed value
// is an error, never the default.
func intParam(op string, params Params, key string, defaultVal int) (int, error) {
	n, ok, err := lookupInt(params, key)
	if err != nil {
		return 0, apperr.InvalidReqError(op, key, err)
	}
	if !ok {
		return defaultVal, nil
	}
	return n, nil
}

func boolParam(params Params, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
		}
	}
	return defaultVal
}

func lookupInt(params Params, key string) (int, bool, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, true, fmt.Errorf("%s: %v is not an integer", key, n)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, true, fmt.Errorf("%s: %v is out of range", key, n)
		}
		return int(n), true, nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, true, fmt.Errorf("%s: %q is not an integer", key, n)
		}
		return parsed, true, nil
	default:
		return 0, true, fmt.Errorf("%s: unsupported type %T", key, v)
	}
}

// requireInt reads a mandatory integer argument.
func requireInt(op string, params Params, key string) (int, error) {
	n, ok, err := lookupInt(params, key)
	if err != nil {
		return 0, apperr.InvalidReqError(op, key, err)
	}
	if !ok {
		return 0, apperr.InvalidReqError(op, key, fmt.Errorf("%s is required", key))
	}
	return n, nil
}

// optionalPoint reads x and y together. Both or neither must be present.
func optionalPoint(op string, params Params) (*computer.Point, error) {
	_, hasX := params["x"]
	_, hasY := params["y"]
	if !hasX && !hasY {
		return nil, nil
	}
	x, err := requireInt(op, params, "x")
	if err != nil {
		return nil, err
	}
	y, err := requireInt(op, params, "y")
	if err != nil {
		return nil, err
	}
	return &computer.Point{X: x, Y: y}, nil
}

// stringsParam accepts a list of strings or a single string.
func stringsParam(params Params, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// pathParam accepts "x,y x,y", a list of [x, y] pairs, or a list of
// {x, y} objects.
func pathParam(op string, params Params, key string) ([]computer.Point, error) {
	switch v := params[key].(type) {
	case nil:
		return nil, nil
	case string:
		path, err := computer.ParsePath(v)
		if err != nil {
			return nil, apperr.InvalidReqError(op, key, err)
		}
		return path, nil
	case []computer.Point:
		return v, nil
	case []interface{}:
		path := make([]computer.Point, 0, len(v))
		for i, item := range v {
			p, err := pointValue(item)
			if err != nil {
				return nil, apperr.InvalidReqError(op, key, fmt.Errorf("point %d: %w", i, err))
			}
			path = append(path, p)
		}
		return path, nil
	default:
		return nil, apperr.InvalidReqError(op, key, fmt.Errorf("unsupported path type %T", v))
	}
}

func pointValue(v interface{}) (computer.Point, error) {
	switch p := v.(type) {
	case string:
		return computer.ParsePoint(p)
	case []interface{}:
		if len(p) != 2 {
			return computer.Point{}, fmt.Errorf("expected [x, y], got %d values", len(p))
		}
		x, _, errX := lookupInt(Params{"x": p[0]}, "x")
		y, _, errY := lookupInt(Params{"y": p[1]}, "y")
		if errX != nil || errY != nil {
			return computer.Point{}, fmt.Errorf("expected integer coordinates, got %v", p)
		}
		return computer.Point{X: x, Y: y}, nil
	case map[string]interface{}:
		x, okX, errX := lookupInt(p, "x")
		y, okY, errY := lookupInt(p, "y")
		if !okX || !okY || errX != nil || errY != nil {
			return computer.Point{}, fmt.Errorf("expected {x, y}, got %v", p)
		}
		return computer.Point{X: x, Y: y}, nil
	default:
		return computer.Point{}, fmt.Errorf("unsupported point type %T", v)
	}
}
