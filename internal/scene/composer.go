// Package scene composes the static desk scene: it owns the texture and
// material catalogs and re-issues every placement's transform, bindings and
// draw call once per frame.
package scene

import (
	"fmt"
	"path/filepath"

	"desk-scene/internal/geometry"
	"desk-scene/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Shader uniform names shared with assets/shaders/scene.*.
const (
	uniformModel      = "model"
	uniformColor      = "objectColor"
	uniformTexture    = "objectTexture"
	uniformUseTexture = "bUseTexture"
	uniformUseLights  = "bUseLighting"
	uniformUVScale    = "UVscale"
)

// UniformSink publishes named uniform values into the active shader
// program. Last write before a draw wins.
type UniformSink interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, m mgl32.Mat4)
}

// MeshProvider loads primitive geometry once per kind and issues draw calls
// against previously published shader state.
type MeshProvider interface {
	Load(kind geometry.Kind) error
	Draw(kind geometry.Kind)
}

// Composer renders the static scene against a uniform sink and a mesh
// provider.
type Composer struct {
	sink      UniformSink
	meshes    MeshProvider
	textures  *TextureTable
	materials *MaterialTable
	log       *zap.Logger
}

// NewComposer creates a scene composer. The uploader owns the GPU side of
// texture registration.
func NewComposer(sink UniformSink, meshes MeshProvider, uploader Uploader) *Composer {
	return &Composer{
		sink:      sink,
		meshes:    meshes,
		textures:  NewTextureTable(uploader),
		materials: NewMaterialTable(DeskMaterials()),
		log:       logger.Log,
	}
}

// Textures exposes the composer's texture table.
func (c *Composer) Textures() *TextureTable {
	return c.textures
}

// PrepareScene performs the one-time scene setup: registers the scene
// textures (failures are logged and tolerated), binds them to texture
// units, publishes the light sources and loads each required mesh kind
// exactly once.
func (c *Composer) PrepareScene(textureDir string) error {
	for _, t := range deskTextures {
		path := filepath.Join(textureDir, t.file)
		if err := c.textures.Register(path, t.tag); err != nil {
			// A missing texture degrades that object, not the scene.
			c.log.Warn("texture load failed",
				zap.String("tag", t.tag),
				zap.String("path", path),
				zap.Error(err))
		}
	}
	c.textures.BindAll()

	c.publishLights(DeskLights())

	for _, kind := range []geometry.Kind{
		geometry.KindPlane,
		geometry.KindBox,
		geometry.KindCylinder,
		geometry.KindTaperedCylinder,
		geometry.KindCone,
		geometry.KindTorus,
	} {
		if err := c.meshes.Load(kind); err != nil {
			return fmt.Errorf("loading %s mesh: %w", kind, err)
		}
	}

	return nil
}

// RenderScene issues the full fixed draw sequence, one draw call per
// placement.
func (c *Composer) RenderScene(placements []Placement) {
	for i := range placements {
		c.drawPlacement(&placements[i])
	}
}

func (c *Composer) drawPlacement(p *Placement) {
	c.SetTransformations(p.Scale, p.RotationX, p.RotationY, p.RotationZ, p.Position)

	if p.Color != nil {
		c.SetShaderColor(*p.Color)
	} else {
		c.SetShaderTexture(p.TextureTag)
	}
	c.SetShaderMaterial(p.MaterialTag)

	u, v := p.UVScale[0], p.UVScale[1]
	if u == 0 && v == 0 {
		u, v = 1, 1
	}
	c.SetTextureUVScale(u, v)

	c.meshes.Draw(p.Mesh)
}

// BuildModelMatrix composes the model transform in the fixed order
// translation * rotX * rotY * rotZ * scale, with rotations in degrees.
func BuildModelMatrix(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaling)
}

// SetTransformations publishes the model matrix for the next draw.
func (c *Composer) SetTransformations(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) {
	c.sink.SetMat4(uniformModel, BuildModelMatrix(scale, rotXDeg, rotYDeg, rotZDeg, position))
}

// SetShaderColor publishes a solid color and disables texturing for the
// next draw.
func (c *Composer) SetShaderColor(color mgl32.Vec4) {
	c.sink.SetBool(uniformUseTexture, false)
	c.sink.SetVec4(uniformColor, color)
}

// SetShaderTexture resolves the tag to a texture unit and publishes it for
// the next draw. A missing tag publishes the -1 sentinel, which samples
// nothing but never crashes the frame.
func (c *Composer) SetShaderTexture(tag string) {
	c.sink.SetBool(uniformUseTexture, true)
	c.sink.SetInt(uniformTexture, int32(c.textures.FindSlot(tag)))
}

// SetShaderMaterial publishes the resolved material's shading fields. On a
// lookup miss the previous material uniforms are left untouched.
func (c *Composer) SetShaderMaterial(tag string) {
	material, ok := c.materials.Find(tag)
	if !ok {
		c.log.Warn("material not found, keeping previous shader material", zap.String("tag", tag))
		return
	}
	c.sink.SetVec3("material.ambientColor", material.AmbientColor)
	c.sink.SetFloat("material.ambientStrength", material.AmbientStrength)
	c.sink.SetVec3("material.diffuseColor", material.DiffuseColor)
	c.sink.SetVec3("material.specularColor", material.SpecularColor)
	c.sink.SetFloat("material.shininess", material.Shininess)
}

// SetTextureUVScale publishes the UV repeat factors for the next draw.
func (c *Composer) SetTextureUVScale(u, v float32) {
	c.sink.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}

func (c *Composer) publishLights(lights []Light) {
	for i, l := range lights {
		prefix := fmt.Sprintf("lightSources[%d]", i)
		c.sink.SetVec3(prefix+".position", l.Position)
		c.sink.SetVec3(prefix+".ambientColor", l.AmbientColor)
		c.sink.SetVec3(prefix+".diffuseColor", l.DiffuseColor)
		c.sink.SetVec3(prefix+".specularColor", l.SpecularColor)
		c.sink.SetFloat(prefix+".focalStrength", l.FocalStrength)
		c.sink.SetFloat(prefix+".specularIntensity", l.SpecularIntensity)
	}
	c.sink.SetBool(uniformUseLights, true)
}

// Dispose releases the composer's GPU textures.
func (c *Composer) Dispose() {
	c.textures.Destroy()
}
