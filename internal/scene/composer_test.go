package scene

import (
	"math"
	"path/filepath"
	"testing"

	"desk-scene/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeSink struct {
	bools  map[string]bool
	ints   map[string]int32
	floats map[string]float32
	vec2s  map[string]mgl32.Vec2
	vec3s  map[string]mgl32.Vec3
	vec4s  map[string]mgl32.Vec4
	mat4s  map[string]mgl32.Mat4
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		bools:  make(map[string]bool),
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		vec2s:  make(map[string]mgl32.Vec2),
		vec3s:  make(map[string]mgl32.Vec3),
		vec4s:  make(map[string]mgl32.Vec4),
		mat4s:  make(map[string]mgl32.Mat4),
	}
}

func (s *fakeSink) SetBool(name string, value bool)     { s.bools[name] = value }
func (s *fakeSink) SetInt(name string, value int32)     { s.ints[name] = value }
func (s *fakeSink) SetFloat(name string, value float32) { s.floats[name] = value }
func (s *fakeSink) SetVec2(name string, v mgl32.Vec2)   { s.vec2s[name] = v }
func (s *fakeSink) SetVec3(name string, v mgl32.Vec3)   { s.vec3s[name] = v }
func (s *fakeSink) SetVec4(name string, v mgl32.Vec4)   { s.vec4s[name] = v }
func (s *fakeSink) SetMat4(name string, m mgl32.Mat4)   { s.mat4s[name] = m }

type fakeMeshes struct {
	loads map[geometry.Kind]int
	draws []geometry.Kind
}

func newFakeMeshes() *fakeMeshes {
	return &fakeMeshes{loads: make(map[geometry.Kind]int)}
}

func (m *fakeMeshes) Load(kind geometry.Kind) error {
	m.loads[kind]++
	return nil
}

func (m *fakeMeshes) Draw(kind geometry.Kind) {
	m.draws = append(m.draws, kind)
}

func newTestComposer() (*Composer, *fakeSink, *fakeMeshes) {
	sink := newFakeSink()
	meshes := newFakeMeshes()
	return NewComposer(sink, meshes, newFakeUploader()), sink, meshes
}

// writeSceneTextures materializes every catalog texture file as a small
// decodable image so PrepareScene succeeds without real assets.
func writeSceneTextures(t *testing.T, dir string) {
	t.Helper()
	for _, tex := range deskTextures {
		writePNG(t, filepath.Join(dir, tex.file), rgbaImage(4, 4))
	}
}

func TestBuildModelMatrix(t *testing.T) {
	// Scale (2,1,1), rotate 90 degrees about Y, translate (1,0,0): the
	// local point (3,0,0) lands at (1,0,-6).
	m := BuildModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{1, 0, 0})
	got := m.Mul4x1(mgl32.Vec4{3, 0, 0, 1})
	want := mgl32.Vec4{1, 0, -6, 1}

	for i := 0; i < 4; i++ {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Fatalf("transformed point = %v, want %v", got, want)
		}
	}
}

func TestPrepareSceneLoadsCatalog(t *testing.T) {
	dir := t.TempDir()
	writeSceneTextures(t, dir)

	composer, sink, meshes := newTestComposer()
	if err := composer.PrepareScene(dir); err != nil {
		t.Fatal(err)
	}

	if got := composer.Textures().Len(); got != len(deskTextures) {
		t.Errorf("expected %d textures, got %d", len(deskTextures), got)
	}
	if len(meshes.loads) != 6 {
		t.Errorf("expected 6 mesh kinds loaded, got %d", len(meshes.loads))
	}
	for kind, count := range meshes.loads {
		if count != 1 {
			t.Errorf("%s loaded %d times, want exactly once", kind, count)
		}
	}
	if !sink.bools[uniformUseLights] {
		t.Error("lighting must be enabled after scene preparation")
	}
	if _, ok := sink.vec3s["lightSources[0].position"]; !ok {
		t.Error("light source uniforms must be published during preparation")
	}
	if _, ok := sink.vec3s["lightSources[3].specularColor"]; !ok {
		t.Error("all four light sources must be published")
	}
}

func TestPrepareSceneToleratesMissingTextures(t *testing.T) {
	composer, _, meshes := newTestComposer()

	// Empty directory: every texture registration fails, the scene still
	// prepares.
	if err := composer.PrepareScene(t.TempDir()); err != nil {
		t.Fatalf("missing textures must not fail preparation: %v", err)
	}
	if got := composer.Textures().Len(); got != 0 {
		t.Errorf("expected empty texture table, got %d", got)
	}
	if len(meshes.loads) != 6 {
		t.Errorf("meshes must still load, got %d kinds", len(meshes.loads))
	}
}

func TestRenderSceneDrawsEveryPlacement(t *testing.T) {
	dir := t.TempDir()
	writeSceneTextures(t, dir)

	composer, sink, meshes := newTestComposer()
	if err := composer.PrepareScene(dir); err != nil {
		t.Fatal(err)
	}

	placements := DeskScene()
	composer.RenderScene(placements)

	if len(meshes.draws) != len(placements) {
		t.Fatalf("expected %d draw calls, got %d", len(placements), len(meshes.draws))
	}
	for i, p := range placements {
		if meshes.draws[i] != p.Mesh {
			t.Errorf("draw %d (%s): mesh %s, want %s", i, p.Name, meshes.draws[i], p.Mesh)
		}
	}
	if _, ok := sink.mat4s[uniformModel]; !ok {
		t.Error("model matrix must be published before each draw")
	}
}

func TestDeskSceneHasSeventeenPlacements(t *testing.T) {
	placements := DeskScene()
	if len(placements) != 17 {
		t.Fatalf("expected 17 placements, got %d", len(placements))
	}

	seen := make(map[string]bool, len(placements))
	for _, p := range placements {
		if seen[p.Name] {
			t.Errorf("duplicate placement name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Color == nil && p.TextureTag == "" {
			t.Errorf("placement %q has neither color nor texture", p.Name)
		}
	}
}

func TestSetShaderTextureMiss(t *testing.T) {
	composer, sink, _ := newTestComposer()

	composer.SetShaderTexture("no-such-texture")

	if !sink.bools[uniformUseTexture] {
		t.Error("texture path must enable texturing")
	}
	if got := sink.ints[uniformTexture]; got != int32(SlotNotFound) {
		t.Errorf("missing texture must publish %d, got %d", SlotNotFound, got)
	}
}

func TestSetShaderTextureHit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mug.png")
	writePNG(t, path, rgbaImage(2, 2))

	composer, sink, _ := newTestComposer()
	if err := composer.Textures().Register(path, "mug"); err != nil {
		t.Fatal(err)
	}

	composer.SetShaderTexture("mug")
	if got := sink.ints[uniformTexture]; got != 0 {
		t.Errorf("first registered texture must resolve to slot 0, got %d", got)
	}
}

func TestSetShaderColorDisablesTexturing(t *testing.T) {
	composer, sink, _ := newTestComposer()

	composer.SetShaderColor(mgl32.Vec4{0.2, 0.4, 0.6, 1})

	if sink.bools[uniformUseTexture] {
		t.Error("color path must disable texturing")
	}
	if got := sink.vec4s[uniformColor]; got != (mgl32.Vec4{0.2, 0.4, 0.6, 1}) {
		t.Errorf("objectColor = %v", got)
	}
}

func TestSetShaderMaterialMissKeepsPrevious(t *testing.T) {
	composer, sink, _ := newTestComposer()

	composer.SetShaderMaterial("ceramic")
	prevDiffuse := sink.vec3s["material.diffuseColor"]
	prevShininess := sink.floats["material.shininess"]

	composer.SetShaderMaterial("no-such-material")

	if got := sink.vec3s["material.diffuseColor"]; got != prevDiffuse {
		t.Errorf("material miss must keep previous diffuse, got %v", got)
	}
	if got := sink.floats["material.shininess"]; got != prevShininess {
		t.Errorf("material miss must keep previous shininess, got %v", got)
	}
}

func TestUVScaleDefaultsToOne(t *testing.T) {
	composer, sink, _ := newTestComposer()

	composer.drawPlacement(&Placement{Name: "bare", Mesh: geometry.KindBox, MaterialTag: "ceramic"})

	if got := sink.vec2s[uniformUVScale]; got != (mgl32.Vec2{1, 1}) {
		t.Errorf("unset UV scale must default to (1,1), got %v", got)
	}
}

func TestMaterialCatalog(t *testing.T) {
	table := NewMaterialTable(DeskMaterials())
	for _, tag := range []string{"ceramic", "marble", "paper", "plastic", "dullPlastic", "glass"} {
		if _, ok := table.Find(tag); !ok {
			t.Errorf("material %q missing from catalog", tag)
		}
	}
}
