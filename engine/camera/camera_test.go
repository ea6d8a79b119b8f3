package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const tol = 1e-4

func TestLookAtPointsViewDirectionAtTarget(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 10, 20}), WithLookAt(mgl32.Vec3{}))

	forward := cam.Quaternion().Rotate(mgl32.Vec3{0, 0, -1})
	want := mgl32.Vec3{0, -10, -20}.Normalize()
	if !common.Vec3ApproxEqual(forward, want, tol) {
		t.Fatalf("forward = %v, want %v", forward, want)
	}

	// The origin must project to the center of the screen.
	clip := cam.ViewProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math32.Abs(clip.X()/clip.W()) > tol || math32.Abs(clip.Y()/clip.W()) > tol {
		t.Fatalf("origin projects to (%v, %v), want screen center", clip.X()/clip.W(), clip.Y()/clip.W())
	}
}

func TestSetAspectRefreshesProjection(t *testing.T) {
	cam := NewCamera(WithFovDegrees(75), WithAspect(1))
	before := cam.ProjectionMatrix()

	cam.SetAspect(2)
	after := cam.ProjectionMatrix()

	if cam.Aspect() != 2 {
		t.Fatalf("Aspect() = %v, want 2", cam.Aspect())
	}
	if math32.Abs(after[0]-before[0]/2) > tol {
		t.Fatalf("x scale = %v, want %v", after[0], before[0]/2)
	}
	if after[5] != before[5] {
		t.Fatalf("y scale changed from %v to %v", before[5], after[5])
	}
}

func TestRayThroughCenterFollowsViewDirection(t *testing.T) {
	cam := NewCamera(WithFovDegrees(50), WithPosition(mgl32.Vec3{0, 0, 3}))

	r := cam.Ray(0, 0)
	if !common.Vec3ApproxEqual(r.Origin, mgl32.Vec3{0, 0, 3}, tol) {
		t.Fatalf("origin = %v", r.Origin)
	}
	if !common.Vec3ApproxEqual(r.Direction, mgl32.Vec3{0, 0, -1}, tol) {
		t.Fatalf("direction = %v, want (0, 0, -1)", r.Direction)
	}

	// The top edge of the screen lies half a field of view above the axis.
	top := cam.Ray(0, 1)
	angle := math32.Acos(top.Direction.Dot(mgl32.Vec3{0, 0, -1}))
	if math32.Abs(angle-mgl32.DegToRad(25)) > 1e-3 {
		t.Fatalf("top edge angle = %v, want 25 degrees", mgl32.RadToDeg(angle))
	}
	if top.Direction.Y() <= 0 {
		t.Fatalf("top edge ray points down: %v", top.Direction)
	}
}

func TestOrbitControllerAimsCameraOnCreate(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 10, 20}))
	NewOrbitController(cam)

	forward := cam.Quaternion().Rotate(mgl32.Vec3{0, 0, -1})
	if !common.Vec3ApproxEqual(forward, mgl32.Vec3{0, -10, -20}.Normalize(), tol) {
		t.Fatalf("forward = %v, want toward origin", forward)
	}
	if !common.Vec3ApproxEqual(cam.Position(), mgl32.Vec3{0, 10, 20}, 1e-3) {
		t.Fatalf("position moved to %v", cam.Position())
	}
}

func TestOrbitControllerDampingDecays(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 0, 10}))
	oc := NewOrbitController(cam)

	oc.Rotate(-100, 0, 1000)

	var steps []float32
	prev := math32.Atan2(cam.Position().X(), cam.Position().Z())
	for range 3 {
		if !oc.Update() {
			t.Fatal("expected camera to move while inertia remains")
		}
		cur := math32.Atan2(cam.Position().X(), cam.Position().Z())
		steps = append(steps, cur-prev)
		prev = cur
	}

	total := 2 * math32.Pi * 100 / 1000
	if math32.Abs(steps[0]-total*0.05) > 1e-4 {
		t.Fatalf("first step = %v, want %v", steps[0], total*0.05)
	}
	for i := 1; i < len(steps); i++ {
		if math32.Abs(steps[i]-steps[i-1]*0.95) > 1e-4 {
			t.Fatalf("step %d = %v, want %v", i, steps[i], steps[i-1]*0.95)
		}
	}

	for range 2000 {
		oc.Update()
	}
	if oc.Update() {
		t.Fatal("expected inertia to settle")
	}
	if r := cam.Position().Len(); math32.Abs(r-10) > 1e-3 {
		t.Fatalf("radius drifted to %v", r)
	}
}

func TestOrbitControllerWithoutDampingAppliesAtOnce(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 0, 10}))
	oc := NewOrbitController(cam, WithDamping(false))

	oc.Rotate(-250, 0, 1000)
	oc.Update()

	if !common.Vec3ApproxEqual(cam.Position(), mgl32.Vec3{10, 0, 0}, 1e-3) {
		t.Fatalf("position = %v, want (10, 0, 0)", cam.Position())
	}
	if oc.Update() {
		t.Fatal("expected no further motion without damping")
	}
}

func TestOrbitControllerSyncCancelsInertia(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 10, 20}))
	oc := NewOrbitController(cam)

	oc.Rotate(300, 120, 800)
	oc.Update()

	snap := mgl32.Vec3{10, 0, 0}
	cam.SetPosition(snap)
	cam.LookAt(mgl32.Vec3{})
	oc.Sync()

	oc.Update()
	if !common.Vec3ApproxEqual(cam.Position(), snap, 1e-3) {
		t.Fatalf("position = %v, want %v after sync", cam.Position(), snap)
	}
}

func TestOrbitControllerZoomAndBounds(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 0, 10}))
	oc := NewOrbitController(cam, WithDamping(false), WithDistanceBounds(5, 12))

	oc.Zoom(1)
	oc.Update()
	if r := cam.Position().Len(); math32.Abs(r-9.5) > 1e-3 {
		t.Fatalf("radius = %v, want 9.5", r)
	}

	oc.Zoom(-100)
	oc.Update()
	if r := cam.Position().Len(); math32.Abs(r-12) > 1e-3 {
		t.Fatalf("radius = %v, want clamp at 12", r)
	}

	oc.Zoom(100)
	oc.Update()
	if r := cam.Position().Len(); math32.Abs(r-5) > 1e-3 {
		t.Fatalf("radius = %v, want clamp at 5", r)
	}
}

func TestOrbitControllerPolarClamp(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 0, 10}))
	oc := NewOrbitController(cam, WithDamping(false))

	oc.Rotate(0, 10000, 100)
	oc.Update()

	pos := cam.Position()
	if pos.Y() <= 9.99 || math32.IsNaN(pos.X()) {
		t.Fatalf("position = %v, want just off the top pole", pos)
	}
	if !common.Vec3ApproxEqual(cam.Quaternion().Rotate(mgl32.Vec3{0, 0, -1}), mgl32.Vec3{0, -1, 0}, 1e-3) {
		t.Fatal("expected camera to look straight down")
	}
}

func TestOrbitControllerPanMovesTarget(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 0, 10}))
	oc := NewOrbitController(cam, WithDamping(false))

	oc.Pan(100, 0, 1000)
	oc.Update()

	if oc.Target().X() >= 0 {
		t.Fatalf("target = %v, want moved toward -X when dragging right", oc.Target())
	}
	if math32.Abs(cam.Position().X()-oc.Target().X()) > tol {
		t.Fatal("camera and target must move together")
	}
}
