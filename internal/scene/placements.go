package scene

import (
	"desk-scene/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Placement describes one object's transform and surface assignment for one
// frame's draw. Placements are plain data, recomputed against the shader
// every frame.
type Placement struct {
	Name      string
	Scale     mgl32.Vec3
	RotationX float32 // degrees
	RotationY float32
	RotationZ float32
	Position  mgl32.Vec3

	Mesh        geometry.Kind
	TextureTag  string
	MaterialTag string
	UVScale     [2]float32
	// Color, when set, replaces the texture with a solid color.
	Color *mgl32.Vec4
}

// deskTextures lists the scene's texture files and their lookup tags.
var deskTextures = []struct {
	file string
	tag  string
}{
	{"ceramicTexture.jpg", "mug"},
	{"stoneTexture.jpg", "table"},
	{"blackPlasticTexture.jpg", "blackPlastic"},
	{"whitePlasticTexture.jpg", "whitePlastic"},
	{"bluePlasticTexture.jpg", "bluePlastic"},
	{"redPaperTexture.jpg", "redPaper"},
	{"blackBookTexture.jpg", "blackBook"},
	{"brownBookTexture.jpg", "brownBook"},
}

// DeskScene returns the reference scene: 17 placements forming a table with
// a mug on a coaster, a stack of books, a pen, a snack container and two
// window planes behind it all.
func DeskScene() []Placement {
	return []Placement{
		{
			Name:        "table",
			Scale:       mgl32.Vec3{10, 1, 9},
			Position:    mgl32.Vec3{0, 1, 0},
			Mesh:        geometry.KindPlane,
			TextureTag:  "table",
			MaterialTag: "marble",
		},
		{
			Name:        "mug coaster",
			Scale:       mgl32.Vec3{1.4, 0.06, 1.4},
			Position:    mgl32.Vec3{4, 1, -1},
			Mesh:        geometry.KindCylinder,
			TextureTag:  "whitePlastic",
			MaterialTag: "dullPlastic",
		},
		{
			Name:        "mug base",
			Scale:       mgl32.Vec3{1, 0.8, 1},
			RotationX:   180,
			Position:    mgl32.Vec3{4, 1.8, -1},
			Mesh:        geometry.KindTaperedCylinder,
			TextureTag:  "mug",
			MaterialTag: "ceramic",
		},
		{
			Name:        "mug handle",
			Scale:       mgl32.Vec3{0.6, 0.7, 1},
			RotationX:   180,
			Position:    mgl32.Vec3{5, 2.4, -1},
			Mesh:        geometry.KindTorus,
			TextureTag:  "mug",
			MaterialTag: "ceramic",
		},
		{
			Name:        "mug body",
			Scale:       mgl32.Vec3{1, 1.8, 1},
			RotationX:   180,
			Position:    mgl32.Vec3{4, 3.6, -1},
			Mesh:        geometry.KindCylinder,
			TextureTag:  "mug",
			MaterialTag: "ceramic",
		},
		{
			Name:        "blue book",
			Scale:       mgl32.Vec3{6, 0.275, 3.75},
			RotationY:   90,
			Position:    mgl32.Vec3{0, 1.1, 1},
			Mesh:        geometry.KindBox,
			TextureTag:  "bluePlastic",
			MaterialTag: "dullPlastic",
		},
		{
			Name:        "brown book",
			Scale:       mgl32.Vec3{6.4, 0.6, 3.75},
			Position:    mgl32.Vec3{-2, 1.2, -4.4},
			Mesh:        geometry.KindBox,
			TextureTag:  "brownBook",
			MaterialTag: "paper",
		},
		{
			Name:        "middle black book",
			Scale:       mgl32.Vec3{5.7, 0.5, 3.25},
			RotationY:   -10,
			Position:    mgl32.Vec3{-2.2, 1.7, -4.4},
			Mesh:        geometry.KindBox,
			TextureTag:  "blackBook",
			MaterialTag: "paper",
		},
		{
			Name:        "top black book",
			Scale:       mgl32.Vec3{5.7, 0.5, 3.25},
			RotationY:   20,
			Position:    mgl32.Vec3{-2.2, 2.2, -4.4},
			Mesh:        geometry.KindBox,
			TextureTag:  "blackBook",
			MaterialTag: "paper",
		},
		{
			Name:        "snack container",
			Scale:       mgl32.Vec3{2, 2.7, 2},
			Position:    mgl32.Vec3{-4, 2, -0.5},
			Mesh:        geometry.KindBox,
			TextureTag:  "redPaper",
			MaterialTag: "paper",
		},
		{
			Name:        "snack container lid",
			Scale:       mgl32.Vec3{1.09, 0.4, 1.09},
			Position:    mgl32.Vec3{-4, 3.35, -0.5},
			Mesh:        geometry.KindCylinder,
			TextureTag:  "blackPlastic",
			MaterialTag: "plastic",
		},
		{
			Name:        "pen barrel",
			Scale:       mgl32.Vec3{0.05, 2, 0.05},
			RotationX:   90,
			RotationZ:   64,
			Position:    mgl32.Vec3{0.9, 1.33, 1},
			Mesh:        geometry.KindCylinder,
			TextureTag:  "blackPlastic",
			MaterialTag: "plastic",
		},
		{
			Name:        "pen tip",
			Scale:       mgl32.Vec3{0.05, 0.12, 0.05},
			RotationX:   90,
			RotationZ:   64,
			Position:    mgl32.Vec3{-0.9, 1.33, 1.877},
			Mesh:        geometry.KindCone,
			TextureTag:  "blackPlastic",
			MaterialTag: "plastic",
		},
		{
			Name:        "pen cap",
			Scale:       mgl32.Vec3{0.05, 0.09, 0.05},
			RotationX:   90,
			RotationZ:   244,
			Position:    mgl32.Vec3{0.9, 1.33, 1},
			Mesh:        geometry.KindTaperedCylinder,
			TextureTag:  "blackPlastic",
			MaterialTag: "plastic",
		},
		{
			Name:        "pen clip",
			Scale:       mgl32.Vec3{0.02, 0.45, 0.015},
			RotationX:   90,
			RotationZ:   244,
			Position:    mgl32.Vec3{0.93, 1.38, 1.02},
			Mesh:        geometry.KindBox,
			TextureTag:  "blackPlastic",
			MaterialTag: "plastic",
		},
		{
			Name:        "left window",
			Scale:       mgl32.Vec3{6, 1, 9},
			RotationX:   90,
			Position:    mgl32.Vec3{-20, 6, -17},
			Mesh:        geometry.KindPlane,
			TextureTag:  "whitePlastic",
			MaterialTag: "plastic",
		},
		{
			Name:        "right window",
			Scale:       mgl32.Vec3{6, 1, 9},
			RotationX:   90,
			Position:    mgl32.Vec3{20, 6, -17},
			Mesh:        geometry.KindPlane,
			TextureTag:  "whitePlastic",
			MaterialTag: "plastic",
		},
	}
}
