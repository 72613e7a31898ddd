package scene

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong shading constants published for each object.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialTable is an immutable tag-indexed catalog of materials.
type MaterialTable struct {
	byTag map[string]Material
}

// NewMaterialTable builds a table from the given materials. On duplicate
// tags the first entry wins.
func NewMaterialTable(materials []Material) *MaterialTable {
	byTag := make(map[string]Material, len(materials))
	for _, m := range materials {
		if _, exists := byTag[m.Tag]; !exists {
			byTag[m.Tag] = m
		}
	}
	return &MaterialTable{byTag: byTag}
}

// Find returns the material for tag. ok is false on a lookup miss.
func (t *MaterialTable) Find(tag string) (Material, bool) {
	m, ok := t.byTag[tag]
	return m, ok
}

// Len returns the number of materials in the table.
func (t *MaterialTable) Len() int {
	return len(t.byTag)
}

// DeskMaterials returns the six materials used by the desk scene.
func DeskMaterials() []Material {
	return []Material{
		{
			Tag:             "ceramic",
			AmbientColor:    mgl32.Vec3{0.7, 0.7, 0.7},
			AmbientStrength: 0.05,
			DiffuseColor:    mgl32.Vec3{0.7, 0.7, 0.7},
			SpecularColor:   mgl32.Vec3{0.8, 0.8, 0.8},
			Shininess:       4.0,
		},
		{
			Tag:             "marble",
			AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			SpecularColor:   mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess:       20.0,
		},
		{
			Tag:             "paper",
			AmbientColor:    mgl32.Vec3{0.7, 0.7, 0.65},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{1.0, 1.0, 0.9},
			SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:       2.0,
		},
		{
			Tag:             "plastic",
			AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:   mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess:       60.0,
		},
		{
			Tag:             "dullPlastic",
			AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:   mgl32.Vec3{0.7, 0.7, 0.7},
			Shininess:       20.0,
		},
		{
			Tag:             "glass",
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
			Shininess:       100.0,
		},
	}
}
