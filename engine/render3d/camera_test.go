package render3d

import (
	"math"
	"testing"
)

var testViewport = Viewport{W: 1200, H: 800}

func TestProjectOriginAtDefaultCamera(t *testing.T) {
	c := NewCamera()
	sx, sy, depth := c.Project(V3(0, 0, 0), testViewport)

	if sx != 600 || sy != 400 {
		t.Errorf("screen = (%v, %v), want viewport center (600, 400)", sx, sy)
	}
	if math.Abs(depth-(-5)) > 1e-9 {
		t.Errorf("depth = %v, want -5", depth)
	}
}

func TestProjectDepthIsPostRotationZ(t *testing.T) {
	c := NewCamera()
	c.Z = 0

	tests := []struct {
		name      string
		yaw       float64
		point     Vec3
		wantDepth float64
	}{
		{"no rotation", 0, V3(0, 0, 3), 3},
		{"quarter yaw moves x to depth", math.Pi / 2, V3(3, 0, 0), 3},
		{"behind camera", 0, V3(0, 0, -2), -2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c.Yaw = tc.yaw
			_, _, depth := c.Project(tc.point, testViewport)
			if math.Abs(depth-tc.wantDepth) > 1e-9 {
				t.Errorf("depth = %v, want %v", depth, tc.wantDepth)
			}
		})
	}
}

func TestProjectNoYFlip(t *testing.T) {
	c := NewCamera()
	c.Z = 5 // positive depth so the perspective factor is positive

	_, syUp, _ := c.Project(V3(0, 1, 0), testViewport)
	// Object Y up lands below the screen center: screen Y is not flipped.
	if syUp <= 400 {
		t.Errorf("screen y for +Y point = %v, want > 400 (unflipped convention)", syUp)
	}
}

func TestRotateClampsPitch(t *testing.T) {
	c := NewCamera()
	c.Rotate(0, 10)
	if c.Pitch != math.Pi/2 {
		t.Errorf("pitch = %v, want clamp at %v", c.Pitch, math.Pi/2)
	}
	c.Rotate(0, -20)
	if c.Pitch != -math.Pi/2 {
		t.Errorf("pitch = %v, want clamp at %v", c.Pitch, -math.Pi/2)
	}
	if !c.Moved {
		t.Error("Moved flag not set by Rotate")
	}
}

func TestAutoFrameCube(t *testing.T) {
	c := NewCamera()
	c.Rotate(1, 0.5)
	c.Pan(3, 4)

	c.AutoFrame(NewCubeMesh())

	if math.Abs(c.Z-(-5)) > 1e-9 {
		t.Errorf("camera z = %v, want -2.5 * 2 = -5", c.Z)
	}
	if c.PanX != 0 || c.PanY != 0 {
		t.Errorf("pan = (%v, %v), want (0, 0)", c.PanX, c.PanY)
	}
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("rotation = (%v, %v), want reset to zero", c.Yaw, c.Pitch)
	}
	if !c.Moved {
		t.Error("Moved flag not set by AutoFrame")
	}
}

func TestAutoFrameDegenerateBox(t *testing.T) {
	m := &Mesh{Vertices: []Vec3{{2, 2, 2}}}
	m.RecalcBounds()

	c := NewCamera()
	c.AutoFrame(m)

	if c.Z >= 0 {
		t.Errorf("camera z = %v, want negative minimum distance", c.Z)
	}
	if math.Abs(c.Z) < minFrameDistance-1e-9 {
		t.Errorf("camera distance = %v, want at least %v", math.Abs(c.Z), minFrameDistance)
	}
}

func TestPoseEquality(t *testing.T) {
	a := NewCamera()
	b := NewCamera()
	if a.Pose() != b.Pose() {
		t.Fatal("identical cameras produced different poses")
	}
	b.Zoom(0.5)
	if a.Pose() == b.Pose() {
		t.Error("pose unchanged after zoom")
	}
	b.Zoom(-0.5)
	if a.Pose() != b.Pose() {
		t.Error("pose should compare equal after returning to the same state")
	}
}

func TestGridAndAxesRequirePositiveDepth(t *testing.T) {
	t.Run("default camera sees nothing at the origin plane", func(t *testing.T) {
		c := NewCamera() // z = -5: every grid point has depth <= 0
		if segs := GridSegments(c, testViewport); len(segs) != 0 {
			t.Errorf("grid segments = %d, want 0 when depths are negative", len(segs))
		}
		if axes := AxisSegments(c, testViewport); len(axes) != 0 {
			t.Errorf("axis segments = %d, want 0 when depths are negative", len(axes))
		}
	})

	t.Run("positive depth emits full grid and axes", func(t *testing.T) {
		c := NewCamera()
		c.Z = 20
		// 21 lines per direction, both endpoints at depth 20.
		if segs := GridSegments(c, testViewport); len(segs) != 42 {
			t.Errorf("grid segments = %d, want 42", len(segs))
		}
		axes := AxisSegments(c, testViewport)
		if len(axes) != 3 {
			t.Fatalf("axis segments = %d, want 3", len(axes))
		}
		labels := map[string]bool{}
		for _, a := range axes {
			labels[a.Label] = true
		}
		for _, want := range []string{"X", "Y", "Z"} {
			if !labels[want] {
				t.Errorf("missing %s axis", want)
			}
		}
	})
}
