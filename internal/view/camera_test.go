package view_test

import (
	"math"
	"testing"

	"desk-scene/internal/view"

	"github.com/go-gl/mathgl/mgl32"
)

func vecClose(a, b mgl32.Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestNewCameraStartPose(t *testing.T) {
	cam := view.NewCamera(80, 0.1)

	if cam.Position != (mgl32.Vec3{0, 5, 12}) {
		t.Errorf("start position = %v", cam.Position)
	}
	if math.Abs(float64(cam.Front.Len()-1)) > 1e-5 {
		t.Errorf("front vector not unit length: %v", cam.Front)
	}
	if cam.Zoom != 80 {
		t.Errorf("zoom = %v, want 80", cam.Zoom)
	}
}

func TestFirstMouseSampleSeedsOnly(t *testing.T) {
	cam := view.NewCamera(80, 0.1)
	front := cam.Front
	yaw, pitch := cam.Yaw, cam.Pitch

	cam.ProcessMouseMovement(640, 9999)

	if cam.Front != front || cam.Yaw != yaw || cam.Pitch != pitch {
		t.Error("first cursor sample must only seed the delta baseline")
	}
}

func TestMouseMovementUpdatesFront(t *testing.T) {
	cam := view.NewCamera(80, 0.1)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.ProcessMouseMovement(100, 100)
	cam.ProcessMouseMovement(100, 100) // zero delta, recomputes front

	if !vecClose(cam.Front, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("front at yaw -90 pitch 0 = %v, want (0,0,-1)", cam.Front)
	}
}

func TestPitchClamped(t *testing.T) {
	cam := view.NewCamera(80, 0.1)
	cam.ProcessMouseMovement(0, 0)

	// Drag far upward, then far downward.
	cam.ProcessMouseMovement(0, -100000)
	if cam.Pitch != 89 {
		t.Errorf("pitch = %v, want clamp at 89", cam.Pitch)
	}

	cam.ProcessMouseMovement(0, 100000)
	if cam.Pitch != -89 {
		t.Errorf("pitch = %v, want clamp at -89", cam.Pitch)
	}
	if math.Abs(float64(cam.Front.Len()-1)) > 1e-5 {
		t.Errorf("front must stay unit length at the clamp: %v", cam.Front)
	}
}

func TestScrollSpeedClamped(t *testing.T) {
	cam := view.NewCamera(80, 0.5)

	for i := 0; i < 50; i++ {
		cam.ProcessScroll(1)
	}
	if cam.MovementSpeed != 1.0 {
		t.Errorf("speed = %v, want upper clamp 1.0", cam.MovementSpeed)
	}

	for i := 0; i < 50; i++ {
		cam.ProcessScroll(-1)
	}
	if cam.MovementSpeed != 0.1 {
		t.Errorf("speed = %v, want lower clamp 0.1", cam.MovementSpeed)
	}
}

func TestNewCameraClampsInitialSpeed(t *testing.T) {
	if got := view.NewCamera(80, 5).MovementSpeed; got != 1.0 {
		t.Errorf("speed = %v, want clamp to 1.0", got)
	}
	if got := view.NewCamera(80, 0).MovementSpeed; got != 0.1 {
		t.Errorf("speed = %v, want clamp to 0.1", got)
	}
}

func TestResetMouseReseedsBaseline(t *testing.T) {
	cam := view.NewCamera(80, 0.1)
	cam.ProcessMouseMovement(0, 0)
	cam.ProcessMouseMovement(10, 0)
	yaw := cam.Yaw

	cam.ResetMouse()
	cam.ProcessMouseMovement(500, 500) // seeds again, no rotation

	if cam.Yaw != yaw {
		t.Errorf("yaw changed on reseed sample: %v -> %v", yaw, cam.Yaw)
	}
}

func TestRightVectorOrthogonal(t *testing.T) {
	cam := view.NewCamera(80, 0.1)
	right := cam.RightVector()

	if math.Abs(float64(right.Len()-1)) > 1e-5 {
		t.Errorf("right vector not unit length: %v", right)
	}
	if dot := right.Dot(cam.Front); math.Abs(float64(dot)) > 1e-5 {
		t.Errorf("right vector not orthogonal to front, dot = %v", dot)
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	cam := view.NewCamera(80, 0.1)
	want := mgl32.LookAtV(cam.Position, cam.Position.Add(cam.Front), cam.Up)

	if got := cam.ViewMatrix(); got != want {
		t.Errorf("view matrix = %v, want %v", got, want)
	}
}
