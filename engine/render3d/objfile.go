package render3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseOBJ reads the line-oriented text mesh format and builds a fresh mesh.
//
// "v" lines carry at least three numeric tokens; the stored vertex is
// (x, -z, y) — the axis swap corrects the format's upside-down convention.
// "f" lines carry at least three 1-based vertex indices, each optionally
// suffixed with /texture/normal attributes which are ignored; faces with more
// than three indices are fan-triangulated. Other line prefixes are skipped.
// Lines with too few tokens are skipped, matching the format's tolerance.
//
// Any malformed numeric token or out-of-range face index fails the whole
// parse; the caller's current mesh is untouched because the result is built
// from scratch and only returned on success. File normals are discarded and
// recomputed from geometry; face colors are randomized.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			parts := strings.Fields(line)
			if len(parts) < 4 {
				continue
			}
			var c [3]float64
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(parts[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex coordinate %q: %w", lineNo, parts[i+1], err)
				}
				c[i] = f
			}
			m.Vertices = append(m.Vertices, V3(c[0], -c[2], c[1]))

		case strings.HasPrefix(line, "f "):
			parts := strings.Fields(line)
			if len(parts) < 4 {
				continue
			}
			indices := make([]int, 0, len(parts)-1)
			for _, tok := range parts[1:] {
				// "idx", "idx/tex", "idx/tex/norm" — only the leading index matters.
				head, _, _ := strings.Cut(tok, "/")
				idx, err := strconv.Atoi(head)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad face index %q: %w", lineNo, tok, err)
				}
				indices = append(indices, idx-1)
			}
			// Fan triangulation: first vertex plus consecutive pairs.
			for j := 1; j < len(indices)-1; j++ {
				m.Faces = append(m.Faces, [3]int{indices[0], indices[j], indices[j+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh source: %w", err)
	}

	// Vertex and face lines arrive in arbitrary relative order, so index
	// validation has to wait until the whole source is read.
	for _, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("face references vertex %d, mesh has %d vertices", idx+1, len(m.Vertices))
			}
		}
	}

	m.Normals = make([]Vec3, len(m.Faces))
	for i, f := range m.Faces {
		m.Normals[i] = m.computeFaceNormal(f)
	}
	m.Colors = randomFaceColors(len(m.Faces), nil)
	m.RecalcBounds()
	return m, nil
}

// LoadOBJFile parses the mesh description at path.
func LoadOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh file: %w", err)
	}
	defer f.Close()
	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// WriteOBJ writes the mesh in the same text format ParseOBJ reads, applying
// the inverse axis swap so a write/parse round trip reproduces vertex
// positions and face topology. Normals and colors are not written; they are
// regenerated on import.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		// Stored (x, y, z) came from file tokens (x, z, -y).
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Z, -v.Y); err != nil {
			return err
		}
	}
	for _, f := range m.Faces {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}
