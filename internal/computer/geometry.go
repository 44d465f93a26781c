package computer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Logical canvas used for every screenshot and every caller-supplied point.
const (
	LogicalWidth  = 1366
	LogicalHeight = 768
)

// Point is a position on the logical canvas.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Geometry maps the logical canvas onto the physical screen. It is captured
// once when a Computer is built and never changes afterwards.
type Geometry struct {
	PhysicalWidth  int
	PhysicalHeight int
	ScaleX         float64
	ScaleY         float64
}

// NewGeometry derives per-axis scale factors for a physical screen size.
// The axes are independent; non-16:9 displays scale unevenly.
func NewGeometry(physicalWidth, physicalHeight int) Geometry {
	return Geometry{
		PhysicalWidth:  physicalWidth,
		PhysicalHeight: physicalHeight,
		ScaleX:         float64(physicalWidth) / float64(LogicalWidth),
		ScaleY:         float64(physicalHeight) / float64(LogicalHeight),
	}
}

// Contains reports whether (x, y) lies on the logical canvas, bounds inclusive.
func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && x <= LogicalWidth && y >= 0 && y <= LogicalHeight
}

// Scale converts a logical point to physical pixels, truncating.
func (g Geometry) Scale(x, y int) (int, int) {
	return int(float64(x) * g.ScaleX), int(float64(y) * g.ScaleY)
}

// Unscale converts physical pixels back to the nearest logical point.
func (g Geometry) Unscale(px, py int) (int, int) {
	if g.ScaleX == 0 || g.ScaleY == 0 {
		return 0, 0
	}
	return int(math.Round(float64(px) / g.ScaleX)), int(math.Round(float64(py) / g.ScaleY))
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// ParsePath parses a whitespace or semicolon separated list of "x,y" points,
// e.g. "10,10 200,40;300,300".
func ParsePath(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})
	path := make([]Point, 0, len(fields))
	for _, f := range fields {
		p, err := ParsePoint(f)
		if err != nil {
			return nil, err
		}
		path = append(path, p)
	}
	return path, nil
}
