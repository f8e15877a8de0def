package render3d

import "math"

// pixelsPerUnit converts projected units to screen pixels.
const pixelsPerUnit = 100

// projectionEpsilon guards the perspective divide at the camera plane.
const projectionEpsilon = 1e-5

// minFrameDistance keeps auto-framing away from a zero or negative camera
// distance when the bounding box is degenerate.
const minFrameDistance = 2.5

// Viewport carries the current drawable dimensions. It is passed explicitly
// into projection and layout code instead of living in package state.
type Viewport struct {
	W, H int
}

// CameraPose is the value type used to fingerprint camera state for
// projection caching. Two poses compare equal iff every cached projection
// computed under one is valid under the other.
type CameraPose struct {
	Yaw, Pitch float64
	Z          float64
	PanX, PanY float64
}

// Camera holds the viewer's rotation, translation, pan and perspective
// parameters. Pitch and yaw only; there is no roll. Near and far are declared
// for completeness but no plane clipping is performed.
type Camera struct {
	Yaw   float64 // rotation around the vertical axis
	Pitch float64 // rotation around the horizontal axis, clamped to ±90°

	X, Y, Z    float64
	PanX, PanY float64

	FOV       float64
	Near, Far float64

	// Moved forces the next frame to discard cached projections.
	Moved bool
}

// NewCamera returns a camera at the default viewing position.
func NewCamera() *Camera {
	return &Camera{
		Z:     -5,
		FOV:   60,
		Near:  0.1,
		Far:   100,
		Moved: true,
	}
}

// Project maps a 3D point to screen coordinates plus a depth value.
//
// Rotation is yaw first, then pitch — the other order twists the view.
// Perspective is a plain divide-by-depth scale, not a matrix. Screen Y is not
// flipped: screen Y grows downward while object Y grows upward, a deliberate
// asymmetry required by the grid/axis coordinate convention.
//
// The returned depth is the post-rotation, pre-projection z; callers use it
// for depth sorting and to reject points at or behind the camera plane
// (depth <= 0).
func (c *Camera) Project(p Vec3, vp Viewport) (sx, sy, depth float64) {
	x, y, z := p.X, p.Y, p.Z

	cosY, sinY := math.Cos(c.Yaw), math.Sin(c.Yaw)
	x, z = x*cosY-z*sinY, x*sinY+z*cosY

	cosP, sinP := math.Cos(c.Pitch), math.Sin(c.Pitch)
	y, z = y*cosP-z*sinP, y*sinP+z*cosP

	x += c.X + c.PanX
	y += c.Y + c.PanY
	z += c.Z

	factor := c.FOV / (z + projectionEpsilon)
	sx = float64(vp.W)/2 + x*factor*pixelsPerUnit
	sy = float64(vp.H)/2 + y*factor*pixelsPerUnit
	return sx, sy, z
}

// Rotate applies drag deltas to yaw and pitch, clamping pitch to ±90° so the
// view cannot gimbal-flip.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > math.Pi/2 {
		c.Pitch = math.Pi / 2
	}
	if c.Pitch < -math.Pi/2 {
		c.Pitch = -math.Pi / 2
	}
	c.Moved = true
}

// Pan applies a pan delta.
func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
	c.Moved = true
}

// Zoom moves the camera along its depth axis.
func (c *Camera) Zoom(delta float64) {
	c.Z += delta
	c.Moved = true
}

// AutoFrame positions the camera to fit the mesh's bounding box: distance
// 2.5x the largest dimension, panned so the box centroid sits at the origin,
// rotation reset. A degenerate box falls back to a minimum distance.
func (c *Camera) AutoFrame(m *Mesh) {
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	dist := maxDim * 2.5
	if dist < minFrameDistance {
		dist = minFrameDistance
	}
	center := m.Center()

	c.Z = -dist
	c.PanX = -center.X
	c.PanY = -center.Y
	c.X, c.Y = 0, 0
	c.Yaw, c.Pitch = 0, 0
	c.Moved = true
}

// Pose returns the fingerprint of the parameters Project depends on.
func (c *Camera) Pose() CameraPose {
	return CameraPose{
		Yaw:   c.Yaw,
		Pitch: c.Pitch,
		Z:     c.Z,
		PanX:  c.PanX,
		PanY:  c.PanY,
	}
}
