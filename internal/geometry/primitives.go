package geometry

import "math"

const (
	defaultSegments   = 36
	defaultTorusRings = 36
	defaultTorusSides = 18

	taperTopRadius  = 0.5
	torusTubeRadius = 0.25
)

// GeneratePlane builds a 2x2 plane in the XZ plane centered at the origin,
// facing +Y.
func GeneratePlane() *MeshData {
	m := &MeshData{}
	a := m.addVertex(-1, 0, 1, 0, 1, 0, 0, 0)
	b := m.addVertex(1, 0, 1, 0, 1, 0, 1, 0)
	c := m.addVertex(1, 0, -1, 0, 1, 0, 1, 1)
	d := m.addVertex(-1, 0, -1, 0, 1, 0, 0, 1)
	m.addQuad(a, b, c, d)
	return m
}

// GenerateBox builds a unit cube centered at the origin with per-face
// normals and UVs.
func GenerateBox() *MeshData {
	m := &MeshData{}
	h := float32(0.5)

	faces := []struct {
		// corner order is counter-clockwise seen from outside
		corners [4][3]float32
		normal  [3]float32
	}{
		{[4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, [3]float32{0, 0, 1}},     // front
		{[4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, [3]float32{0, 0, -1}}, // back
		{[4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, [3]float32{-1, 0, 0}}, // left
		{[4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, [3]float32{1, 0, 0}},     // right
		{[4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, [3]float32{0, 1, 0}},     // top
		{[4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, [3]float32{0, -1, 0}}, // bottom
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		var idx [4]uint32
		for i, p := range f.corners {
			idx[i] = m.addVertex(p[0], p[1], p[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		m.addQuad(idx[0], idx[1], idx[2], idx[3])
	}
	return m
}

// GenerateCylinder builds a cylinder of radius 1 with its base at y=0 and
// its top at y=1, including both caps.
func GenerateCylinder(segments int) *MeshData {
	return generateRevolved(segments, 1, 1, true)
}

// GenerateTaperedCylinder builds a truncated cone with base radius 1, top
// radius 0.5, base at y=0 and top at y=1.
func GenerateTaperedCylinder(segments int) *MeshData {
	return generateRevolved(segments, 1, taperTopRadius, true)
}

// GenerateCone builds a cone with base radius 1, base at y=0 and apex at
// y=1.
func GenerateCone(segments int) *MeshData {
	return generateRevolved(segments, 1, 0, false)
}

// generateRevolved builds a surface of revolution between a bottom ring of
// radius rBottom and a top ring of radius rTop, one unit tall. When rTop is
// zero the top ring collapses into an apex. topCap is skipped for the apex
// case.
func generateRevolved(segments int, rBottom, rTop float32, topCap bool) *MeshData {
	if segments < 6 {
		segments = 6
	}
	m := &MeshData{}

	// Radial slope of the side surface; y component of the side normal.
	slope := rBottom - rTop

	// Side surface: segments+1 columns so UVs can wrap cleanly.
	bottomRow := make([]uint32, segments+1)
	topRow := make([]uint32, segments+1)
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))

		nx, ny, nz := cos, slope, sin
		nl := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		nx, ny, nz = nx/nl, ny/nl, nz/nl

		u := float32(i) / float32(segments)
		bottomRow[i] = m.addVertex(rBottom*cos, 0, rBottom*sin, nx, ny, nz, u, 0)
		topRow[i] = m.addVertex(rTop*cos, 1, rTop*sin, nx, ny, nz, u, 1)
	}
	for i := 0; i < segments; i++ {
		m.addQuad(bottomRow[i], bottomRow[i+1], topRow[i+1], topRow[i])
	}

	// Bottom cap.
	center := m.addVertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	rim := make([]uint32, segments+1)
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		rim[i] = m.addVertex(rBottom*cos, 0, rBottom*sin, 0, -1, 0, 0.5+0.5*cos, 0.5+0.5*sin)
	}
	for i := 0; i < segments; i++ {
		m.addTriangle(center, rim[i+1], rim[i])
	}

	// Top cap.
	if topCap && rTop > 0 {
		center := m.addVertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
		for i := 0; i <= segments; i++ {
			a := float64(i) / float64(segments) * 2 * math.Pi
			cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
			rim[i] = m.addVertex(rTop*cos, 1, rTop*sin, 0, 1, 0, 0.5+0.5*cos, 0.5+0.5*sin)
		}
		for i := 0; i < segments; i++ {
			m.addTriangle(center, rim[i], rim[i+1])
		}
	}

	return m
}

// GenerateTorus builds a torus in the XY plane around the Z axis with major
// radius 1 and tube radius 0.25.
func GenerateTorus(rings, sides int) *MeshData {
	if rings < 8 {
		rings = 8
	}
	if sides < 6 {
		sides = 6
	}
	m := &MeshData{}
	major := float32(1.0)
	tube := float32(torusTubeRadius)

	grid := make([][]uint32, rings+1)
	for i := 0; i <= rings; i++ {
		grid[i] = make([]uint32, sides+1)
		theta := float64(i) / float64(rings) * 2 * math.Pi
		ct, st := float32(math.Cos(theta)), float32(math.Sin(theta))
		for j := 0; j <= sides; j++ {
			phi := float64(j) / float64(sides) * 2 * math.Pi
			cp, sp := float32(math.Cos(phi)), float32(math.Sin(phi))

			px := (major + tube*cp) * ct
			py := (major + tube*cp) * st
			pz := tube * sp
			nx, ny, nz := cp*ct, cp*st, sp
			u := float32(i) / float32(rings)
			v := float32(j) / float32(sides)
			grid[i][j] = m.addVertex(px, py, pz, nx, ny, nz, u, v)
		}
	}
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			m.addQuad(grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1])
		}
	}
	return m
}
