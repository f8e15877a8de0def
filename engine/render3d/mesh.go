package render3d

import (
	"math"
	"math/rand"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// BoundingBox is an axis-aligned box around a mesh.
type BoundingBox struct {
	Min, Max Vec3
}

// defaultBounds is used for meshes with no vertices so that camera
// auto-framing never sees a degenerate box.
func defaultBounds() BoundingBox {
	return BoundingBox{Min: V3(-1, -1, -1), Max: V3(1, 1, 1)}
}

// defaultNormal replaces a zero-length face normal.
var defaultNormal = V3(0, 0, 1)

// Mesh is a triangle mesh: vertex positions plus faces referencing them by
// index, with one normal and one color per face. Geometry is replaced
// wholesale by a builder call, never edited vertex-by-vertex.
type Mesh struct {
	Vertices []Vec3
	Faces    [][3]int
	Normals  []Vec3
	Colors   []RGB
	Bounds   BoundingBox
}

// MeshStats summarizes a mesh for the stats overlay.
type MeshStats struct {
	Vertices  int
	Triangles int
	Edges     int // estimate: faces * 3 / 2
}

// NewCubeMesh builds the canonical unit cube: 8 vertices, 12 triangles,
// fixed per-face normals and distinct per-face colors.
func NewCubeMesh() *Mesh {
	m := &Mesh{
		Vertices: []Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Faces: [][3]int{
			{0, 1, 2}, {0, 2, 3}, // front
			{4, 5, 6}, {4, 6, 7}, // back
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 5, 6}, {1, 6, 2}, // right
			{3, 2, 6}, {3, 6, 7}, // top
			{0, 1, 5}, {0, 5, 4}, // bottom
		},
		Normals: []Vec3{
			{0, 0, -1}, {0, 0, -1},
			{0, 0, 1}, {0, 0, 1},
			{-1, 0, 0}, {-1, 0, 0},
			{1, 0, 0}, {1, 0, 0},
			{0, 1, 0}, {0, 1, 0},
			{0, -1, 0}, {0, -1, 0},
		},
		Colors: []RGB{
			{255, 0, 0}, {200, 0, 0},
			{0, 255, 0}, {0, 200, 0},
			{0, 0, 255}, {0, 0, 200},
			{255, 255, 0}, {200, 200, 0},
			{255, 0, 255}, {200, 0, 200},
			{0, 255, 255}, {0, 200, 200},
		},
	}
	m.RecalcBounds()
	return m
}

// NewSphereMesh builds a unit sphere from a latitude/longitude tessellation
// with resolution+1 rings of resolution+1 points each. The seam point of each
// ring is duplicated rather than deduplicated, which keeps quad indexing
// trivial. Pole cells collapse into zero-area triangles; the pipeline renders
// them as vanishingly small. A unit sphere is its own normal field, so vertex
// positions double as normals. Face colors come from rng (nil for an
// unseeded default).
func NewSphereMesh(resolution int, rng *rand.Rand) *Mesh {
	if resolution < 2 {
		resolution = 2
	}
	m := &Mesh{}

	for i := 0; i <= resolution; i++ {
		lat := math.Pi * float64(i) / float64(resolution)
		sinLat, cosLat := math.Sin(lat), math.Cos(lat)
		for j := 0; j <= resolution; j++ {
			lon := 2 * math.Pi * float64(j) / float64(resolution)
			p := V3(sinLat*math.Cos(lon), cosLat, sinLat*math.Sin(lon))
			m.Vertices = append(m.Vertices, p)
		}
	}

	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			v1 := i*(resolution+1) + j
			v2 := v1 + 1
			v3 := v1 + resolution + 1
			v4 := v2 + resolution + 1
			m.Faces = append(m.Faces, [3]int{v1, v2, v3})
			m.Faces = append(m.Faces, [3]int{v2, v4, v3})
		}
	}

	// A unit sphere is its own normal field: the per-face normal is the
	// normalized face centroid, outward by construction.
	m.Normals = make([]Vec3, len(m.Faces))
	for i, f := range m.Faces {
		c := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Scale(1.0 / 3)
		n := c.Normalize()
		if n.Len() < 1e-10 {
			n = defaultNormal
		}
		m.Normals[i] = n
	}
	m.Colors = randomFaceColors(len(m.Faces), rng)
	m.RecalcBounds()
	return m
}

// randomFaceColors picks one bright color per face, channels in [100,255].
func randomFaceColors(n int, rng *rand.Rand) []RGB {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	colors := make([]RGB, n)
	for i := range colors {
		colors[i] = RGB{
			R: uint8(100 + intn(156)),
			G: uint8(100 + intn(156)),
			B: uint8(100 + intn(156)),
		}
	}
	return colors
}

// RecalcBounds recomputes the bounding box. Called by every builder after a
// geometry change. An empty mesh falls back to unit-cube bounds.
func (m *Mesh) RecalcBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = defaultBounds()
		return
	}
	bb := BoundingBox{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bb.Min = bb.Min.Min(v)
		bb.Max = bb.Max.Max(v)
	}
	m.Bounds = bb
}

// Size returns the bounding box dimensions.
func (m *Mesh) Size() Vec3 {
	return m.Bounds.Max.Sub(m.Bounds.Min)
}

// Center returns the bounding box centroid.
func (m *Mesh) Center() Vec3 {
	return m.Bounds.Min.Add(m.Bounds.Max).Scale(0.5)
}

// Stats returns counts for the overlay panel.
func (m *Mesh) Stats() MeshStats {
	return MeshStats{
		Vertices:  len(m.Vertices),
		Triangles: len(m.Faces),
		Edges:     len(m.Faces) * 3 / 2,
	}
}

// FaceNormal returns the precomputed normal for face i, or recomputes it from
// the triangle's edge vectors when absent. Degenerate triangles (zero-length
// cross product) get the default normal.
func (m *Mesh) FaceNormal(i int) Vec3 {
	if i < 0 || i >= len(m.Faces) {
		return defaultNormal
	}
	if i < len(m.Normals) {
		return m.Normals[i]
	}
	return m.computeFaceNormal(m.Faces[i])
}

func (m *Mesh) computeFaceNormal(f [3]int) Vec3 {
	for _, idx := range f {
		if idx < 0 || idx >= len(m.Vertices) {
			return defaultNormal
		}
	}
	u := m.Vertices[f[1]].Sub(m.Vertices[f[0]])
	v := m.Vertices[f[2]].Sub(m.Vertices[f[0]])
	n := u.Cross(v)
	if n.Len() < 1e-10 {
		return defaultNormal
	}
	return n.Normalize()
}
