// Package geometry generates the primitive meshes used by the scene and
// owns their GPU buffers.
package geometry

// Kind identifies one of the procedurally generated primitive shapes.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindCylinder
	KindTaperedCylinder
	KindCone
	KindTorus
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindTaperedCylinder:
		return "taperedCylinder"
	case KindCone:
		return "cone"
	case KindTorus:
		return "torus"
	}
	return "unknown"
}

// VertexStride is the number of floats per vertex:
// position(3) + normal(3) + uv(2).
const VertexStride = 8

// MeshData holds interleaved vertex data and triangle indices for one shape.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// addVertex appends one interleaved vertex and returns its index.
func (m *MeshData) addVertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (m *MeshData) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *MeshData) addQuad(a, b, c, d uint32) {
	m.addTriangle(a, b, c)
	m.addTriangle(a, c, d)
}

// Generate builds the vertex data for the given primitive kind.
func Generate(kind Kind) *MeshData {
	switch kind {
	case KindPlane:
		return GeneratePlane()
	case KindBox:
		return GenerateBox()
	case KindCylinder:
		return GenerateCylinder(defaultSegments)
	case KindTaperedCylinder:
		return GenerateTaperedCylinder(defaultSegments)
	case KindCone:
		return GenerateCone(defaultSegments)
	case KindTorus:
		return GenerateTorus(defaultTorusRings, defaultTorusSides)
	}
	return &MeshData{}
}

// Kinds returns all primitive kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
