package render3d

// Segment is a screen-space line segment.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// AxisSegment is a projected coordinate axis with its label anchor.
type AxisSegment struct {
	Segment
	Label string
	Color RGB
}

// Axis colors matching the viewer theme.
var (
	axisXColor = RGB{255, 100, 100}
	axisYColor = RGB{100, 255, 100}
	axisZColor = RGB{100, 100, 255}
)

const (
	gridExtent = 10
	gridStep   = 1
)

// GridSegments projects the ground-plane reference grid. A segment is
// emitted only when both endpoints have positive depth, so lines never wrap
// through the camera plane.
func GridSegments(c *Camera, vp Viewport) []Segment {
	half := float64(gridExtent) / 2
	var segs []Segment
	for i := -gridExtent; i <= gridExtent; i += gridStep {
		fi := float64(i)
		if s, ok := projectSegment(c, vp, V3(fi, -half, 0), V3(fi, half, 0)); ok {
			segs = append(segs, s)
		}
		if s, ok := projectSegment(c, vp, V3(-half, fi, 0), V3(half, fi, 0)); ok {
			segs = append(segs, s)
		}
	}
	return segs
}

// AxisSegments projects the X/Y/Z axis indicators from the origin. Axes
// behind the camera plane are dropped, same rule as the grid.
func AxisSegments(c *Camera, vp Viewport) []AxisSegment {
	axes := []struct {
		end   Vec3
		label string
		color RGB
	}{
		{V3(2, 0, 0), "X", axisXColor},
		{V3(0, 2, 0), "Y", axisYColor},
		{V3(0, 0, 2), "Z", axisZColor},
	}
	var segs []AxisSegment
	for _, a := range axes {
		if s, ok := projectSegment(c, vp, V3(0, 0, 0), a.end); ok {
			segs = append(segs, AxisSegment{Segment: s, Label: a.label, Color: a.color})
		}
	}
	return segs
}

func projectSegment(c *Camera, vp Viewport, a, b Vec3) (Segment, bool) {
	x1, y1, d1 := c.Project(a, vp)
	x2, y2, d2 := c.Project(b, vp)
	if d1 <= 0 || d2 <= 0 {
		return Segment{}, false
	}
	return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
}
