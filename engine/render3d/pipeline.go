package render3d

import (
	"math"
	"sort"
)

// Projection is a vertex's cached screen-space position and view depth.
type Projection struct {
	X, Y  float64
	Depth float64
}

// Point2 is a screen-space coordinate.
type Point2 struct {
	X, Y float64
}

// Polygon is one shaded face ready to draw: screen-space vertices in winding
// order, a fill color, and an optional outline. Polygons arrive from the
// pipeline already sorted back-to-front.
type Polygon struct {
	Points   [3]Point2
	Fill     RGB
	Outline  RGB
	Outlined bool
}

// Default colors matching the viewer theme.
var (
	backgroundColor  = RGB{220, 221, 223}
	solidOutline     = RGB{180, 180, 180}
	textureOutline   = RGB{150, 150, 150}
	defaultFaceColor = RGB{200, 200, 200}
)

// Pipeline turns the current mesh, camera and mode flags into an ordered
// polygon list each frame. It owns the per-vertex projection cache; the cache
// is cleared whole and repopulated lazily, never invalidated piecewise.
//
// The pipeline and its mesh/camera are single-owner state: input translation
// mutates them between frames, never during BuildFrame.
type Pipeline struct {
	Mesh   *Mesh
	Camera *Camera

	Shading         ShadingMode
	ColorMap        ColorMode
	LightAngle      float64
	PerformanceMode bool

	cache      map[int]Projection
	cachePose  CameraPose
	cacheValid bool
}

// NewPipeline wires a pipeline to its mesh and camera.
func NewPipeline(m *Mesh, c *Camera) *Pipeline {
	return &Pipeline{
		Mesh:   m,
		Camera: c,
		cache:  make(map[int]Projection),
	}
}

// SetMesh atomically replaces the mesh and discards cached projections.
func (p *Pipeline) SetMesh(m *Mesh) {
	p.Mesh = m
	p.Invalidate()
}

// Invalidate clears the projection cache.
func (p *Pipeline) Invalidate() {
	p.cache = make(map[int]Projection)
	p.cacheValid = false
}

// faceDepth pairs a face index with its mean projected depth for sorting.
type faceDepth struct {
	index int
	depth float64
}

// BuildFrame computes the frame's polygon list in back-to-front draw order.
//
// Per frame: derive the light direction, validate or reset the projection
// cache against the camera pose, project vertices lazily, depth-sort faces
// farthest-first (stable, so equal depths keep mesh order), cull back-faces,
// shade, and emit.
func (p *Pipeline) BuildFrame(vp Viewport) []Polygon {
	if p.Mesh == nil || len(p.Mesh.Faces) == 0 {
		return nil
	}

	light := LightDirection(p.LightAngle)

	pose := p.Camera.Pose()
	useCache := p.cacheValid && pose == p.cachePose && !p.Camera.Moved && !p.PerformanceMode
	if !useCache {
		p.cache = make(map[int]Projection, len(p.Mesh.Vertices))
		p.cachePose = pose
		p.cacheValid = true
		p.Camera.Moved = false
	}

	depths := make([]faceDepth, 0, len(p.Mesh.Faces))
	for i, face := range p.Mesh.Faces {
		sum := 0.0
		valid := true
		for _, idx := range face {
			if idx < 0 || idx >= len(p.Mesh.Vertices) {
				valid = false
				break
			}
			sum += p.projectVertex(idx, vp).Depth
		}
		if !valid {
			// A face referencing a missing vertex is skipped, not fatal.
			continue
		}
		depths = append(depths, faceDepth{index: i, depth: sum / 3})
	}

	// Painter's algorithm: farthest first. Stable so that equal-depth faces
	// keep their original relative order across frames.
	sort.SliceStable(depths, func(a, b int) bool {
		return depths[a].depth > depths[b].depth
	})

	polys := make([]Polygon, 0, len(depths))
	for _, fd := range depths {
		face := p.Mesh.Faces[fd.index]
		normal := p.Mesh.FaceNormal(fd.index)

		// Simplified facing test against the projected forward component.
		// The normal is not transformed into view space; this mirrors the
		// viewer's established visuals under camera rotation.
		if normal.Z <= 0 {
			continue
		}
		intensity := math.Max(ambientFloor, normal.Dot(light))

		base := defaultFaceColor
		if fd.index < len(p.Mesh.Colors) {
			base = p.Mesh.Colors[fd.index]
		}
		fill := ShadeFace(base, intensity, p.activeColorMap())

		var poly Polygon
		for i, idx := range face {
			proj := p.projectVertex(idx, vp)
			poly.Points[i] = Point2{X: proj.X, Y: proj.Y}
		}

		switch p.Shading {
		case ShadingWireframe:
			poly.Fill = backgroundColor
			poly.Outline = fill
			poly.Outlined = true
		case ShadingTexture:
			poly.Fill = fill
			poly.Outline = textureOutline
			poly.Outlined = !p.PerformanceMode
		default: // ShadingSolid
			poly.Fill = fill
			poly.Outline = solidOutline
			poly.Outlined = !p.PerformanceMode
		}
		polys = append(polys, poly)
	}
	return polys
}

// activeColorMap returns the color mode in effect: the texture-map selection
// only applies in texture view, everything else shades with the base color.
func (p *Pipeline) activeColorMap() ColorMode {
	if p.Shading == ShadingTexture {
		return p.ColorMap
	}
	return ColorMapColor
}

func (p *Pipeline) projectVertex(idx int, vp Viewport) Projection {
	if proj, ok := p.cache[idx]; ok {
		return proj
	}
	sx, sy, depth := p.Camera.Project(p.Mesh.Vertices[idx], vp)
	proj := Projection{X: sx, Y: sy, Depth: depth}
	p.cache[idx] = proj
	return proj
}
