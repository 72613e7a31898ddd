package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is one point-like light source published to the shader.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// DeskLights returns the four scene lights: each window contributes a
// primary sunlight and a softer fill below it.
func DeskLights() []Light {
	ambient := mgl32.Vec3{0.2, 0.2, 0.2}
	sunlight := mgl32.Vec3{1.0, 0.95, 0.9}
	fill := mgl32.Vec3{0.8, 0.75, 0.7}
	softSpecular := mgl32.Vec3{0.5, 0.5, 0.5}

	return []Light{
		{
			Position:          mgl32.Vec3{-20, 15, -16.5},
			AmbientColor:      ambient,
			DiffuseColor:      sunlight,
			SpecularColor:     sunlight,
			FocalStrength:     10,
			SpecularIntensity: 0.2,
		},
		{
			Position:          mgl32.Vec3{-20, 6, -16.5},
			AmbientColor:      ambient,
			DiffuseColor:      fill,
			SpecularColor:     softSpecular,
			FocalStrength:     0.01,
			SpecularIntensity: 0,
		},
		{
			Position:          mgl32.Vec3{20, 15, -16.5},
			AmbientColor:      ambient,
			DiffuseColor:      sunlight,
			SpecularColor:     sunlight,
			FocalStrength:     10,
			SpecularIntensity: 0.2,
		},
		{
			Position:          mgl32.Vec3{20, 6, -16.5},
			AmbientColor:      ambient,
			DiffuseColor:      fill,
			SpecularColor:     softSpecular,
			FocalStrength:     0.01,
			SpecularIntensity: 0,
		},
	}
}
