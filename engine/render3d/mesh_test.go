package render3d

import (
	"math"
	"math/rand"
	"testing"
)

func TestCubeMesh(t *testing.T) {
	m := NewCubeMesh()

	if got := len(m.Vertices); got != 8 {
		t.Errorf("cube vertices = %d, want 8", got)
	}
	if got := len(m.Faces); got != 12 {
		t.Errorf("cube faces = %d, want 12", got)
	}
	if got := len(m.Normals); got != len(m.Faces) {
		t.Errorf("cube normals = %d, want %d", got, len(m.Faces))
	}
	if got := len(m.Colors); got != len(m.Faces) {
		t.Errorf("cube colors = %d, want %d", got, len(m.Faces))
	}

	wantBounds := BoundingBox{Min: V3(-1, -1, -1), Max: V3(1, 1, 1)}
	if m.Bounds != wantBounds {
		t.Errorf("cube bounds = %+v, want %+v", m.Bounds, wantBounds)
	}
	if c := m.Center(); c != (Vec3{}) {
		t.Errorf("cube center = %+v, want origin", c)
	}
}

func TestSphereMesh(t *testing.T) {
	tests := []struct {
		resolution   int
		wantVertices int
		wantFaces    int
	}{
		{resolution: 4, wantVertices: 25, wantFaces: 32},
		{resolution: 10, wantVertices: 121, wantFaces: 200},
		{resolution: 20, wantVertices: 441, wantFaces: 800},
	}

	for _, tc := range tests {
		rng := rand.New(rand.NewSource(1))
		m := NewSphereMesh(tc.resolution, rng)

		if got := len(m.Vertices); got != tc.wantVertices {
			t.Errorf("res %d: vertices = %d, want %d", tc.resolution, got, tc.wantVertices)
		}
		if got := len(m.Faces); got != tc.wantFaces {
			t.Errorf("res %d: faces = %d, want %d", tc.resolution, got, tc.wantFaces)
		}
		if len(m.Normals) != len(m.Faces) || len(m.Colors) != len(m.Faces) {
			t.Errorf("res %d: normals/colors length %d/%d, want %d",
				tc.resolution, len(m.Normals), len(m.Colors), len(m.Faces))
		}

		for i, n := range m.Normals {
			if l := n.Len(); math.Abs(l-1) > 1e-9 {
				t.Fatalf("res %d: normal %d has length %v, want 1", tc.resolution, i, l)
			}
		}
		for i, c := range m.Colors {
			if c.R < 100 || c.G < 100 || c.B < 100 {
				t.Fatalf("res %d: color %d = %+v, channels must be >= 100", tc.resolution, i, c)
			}
		}
	}
}

func TestEmptyMeshBoundsFallback(t *testing.T) {
	m := &Mesh{}
	m.RecalcBounds()
	want := BoundingBox{Min: V3(-1, -1, -1), Max: V3(1, 1, 1)}
	if m.Bounds != want {
		t.Errorf("empty mesh bounds = %+v, want unit cube %+v", m.Bounds, want)
	}
}

func TestFaceNormal(t *testing.T) {
	m := &Mesh{
		Vertices: []Vec3{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			{2, 2, 2}, // shared by the degenerate face
		},
		Faces: [][3]int{
			{0, 1, 2},  // CCW in the XY plane
			{3, 3, 3},  // zero-area
			{0, 1, 99}, // out of range
		},
	}

	t.Run("recomputed from edges", func(t *testing.T) {
		n := m.FaceNormal(0)
		want := V3(0, 0, 1)
		if n.Sub(want).Len() > 1e-9 {
			t.Errorf("FaceNormal(0) = %+v, want %+v", n, want)
		}
	})

	t.Run("degenerate falls back to default", func(t *testing.T) {
		if n := m.FaceNormal(1); n != defaultNormal {
			t.Errorf("FaceNormal(1) = %+v, want default %+v", n, defaultNormal)
		}
	})

	t.Run("bad index falls back to default", func(t *testing.T) {
		if n := m.FaceNormal(2); n != defaultNormal {
			t.Errorf("FaceNormal(2) = %+v, want default %+v", n, defaultNormal)
		}
		if n := m.FaceNormal(17); n != defaultNormal {
			t.Errorf("FaceNormal(17) = %+v, want default %+v", n, defaultNormal)
		}
	})

	t.Run("precomputed wins", func(t *testing.T) {
		withNormals := NewCubeMesh()
		if n := withNormals.FaceNormal(0); n != (Vec3{0, 0, -1}) {
			t.Errorf("FaceNormal(0) = %+v, want stored (0,0,-1)", n)
		}
	})
}

func TestMeshStats(t *testing.T) {
	m := NewCubeMesh()
	stats := m.Stats()
	if stats.Vertices != 8 || stats.Triangles != 12 {
		t.Errorf("stats = %+v, want 8 vertices / 12 triangles", stats)
	}
	if want := 12 * 3 / 2; stats.Edges != want {
		t.Errorf("edge estimate = %d, want %d", stats.Edges, want)
	}
}
