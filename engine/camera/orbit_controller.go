package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitController moves a Camera around a target point using spherical coordinates.
// Input methods (Rotate, Zoom, Pan) only queue motion; Update applies the queued motion to the
// camera. With damping enabled each Update applies a fraction of the queued motion and decays
// the rest, which produces a smooth glide after input stops.
type OrbitController interface {
	// Camera returns the camera driven by this controller.
	//
	// Returns:
	//   - Camera: the controlled camera
	Camera() Camera

	// Target returns the orbit pivot point.
	//
	// Returns:
	//   - mgl32.Vec3: the pivot in world space
	Target() mgl32.Vec3

	// SetTarget moves the orbit pivot. The camera is re-aimed on the next Update.
	//
	// Parameters:
	//   - target: the new pivot in world space
	SetTarget(target mgl32.Vec3)

	// DampingEnabled reports whether inertial damping is active.
	//
	// Returns:
	//   - bool: true if damping is enabled
	DampingEnabled() bool

	// SetDampingEnabled toggles inertial damping.
	//
	// Parameters:
	//   - enabled: true to enable damping
	SetDampingEnabled(enabled bool)

	// DampingFactor returns the fraction of queued motion applied per Update.
	//
	// Returns:
	//   - float32: the damping factor in (0, 1]
	DampingFactor() float32

	// SetDampingFactor sets the fraction of queued motion applied per Update.
	//
	// Parameters:
	//   - factor: the damping factor in (0, 1]
	SetDampingFactor(factor float32)

	// Rotate queues an orbit from a pointer drag. A drag across the full viewport height
	// turns the camera one full revolution at rotate speed 1.
	//
	// Parameters:
	//   - dx: horizontal pointer movement in pixels
	//   - dy: vertical pointer movement in pixels
	//   - viewportHeight: height of the viewport receiving the drag in pixels
	Rotate(dx, dy float32, viewportHeight int)

	// Zoom queues a dolly. Positive delta moves toward the target.
	//
	// Parameters:
	//   - delta: scroll amount, typically one per wheel notch
	Zoom(delta float32)

	// Pan queues a translation of both camera and target parallel to the view plane.
	//
	// Parameters:
	//   - dx: horizontal pointer movement in pixels
	//   - dy: vertical pointer movement in pixels
	//   - viewportHeight: height of the viewport receiving the drag in pixels
	Pan(dx, dy float32, viewportHeight int)

	// Update applies queued motion to the camera and aims it at the target.
	// Call once per frame.
	//
	// Returns:
	//   - bool: true if the camera moved or turned
	Update() bool

	// Sync discards queued motion so the controller adopts the camera's current position.
	// Call after moving the camera directly.
	Sync()
}

type spherical struct {
	radius float32
	theta  float32
	phi    float32
}

// sphericalFromVec converts an offset into radius, azimuth around +Y (theta, 0 on +Z) and
// polar angle from +Y (phi).
func sphericalFromVec(v mgl32.Vec3) spherical {
	s := spherical{radius: v.Len()}
	if s.radius == 0 {
		return s
	}
	s.theta = math32.Atan2(v.X(), v.Z())
	s.phi = math32.Acos(mgl32.Clamp(v.Y()/s.radius, -1, 1))
	return s
}

func (s spherical) vec() mgl32.Vec3 {
	sinPhiRadius := math32.Sin(s.phi) * s.radius
	return mgl32.Vec3{
		sinPhiRadius * math32.Sin(s.theta),
		math32.Cos(s.phi) * s.radius,
		sinPhiRadius * math32.Cos(s.theta),
	}
}

// polarEpsilon keeps phi away from the poles where azimuth is undefined.
const polarEpsilon float32 = 1e-6

type orbitControllerImpl struct {
	mu *sync.Mutex

	camera Camera
	target mgl32.Vec3

	enableDamping bool
	dampingFactor float32

	rotateSpeed float32
	zoomSpeed   float32
	panSpeed    float32

	minDistance   float32
	maxDistance   float32
	minPolarAngle float32
	maxPolarAngle float32

	sphericalDelta spherical
	panOffset      mgl32.Vec3
	scale          float32
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController binds a new OrbitController to cam and immediately aims the camera at the
// target. Damping is enabled with factor 0.05 unless overridden.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(cam Camera, options ...OrbitControllerOption) OrbitController {
	if cam == nil {
		panic("camera: NewOrbitController requires a camera")
	}
	oc := &orbitControllerImpl{
		mu:            &sync.Mutex{},
		camera:        cam,
		enableDamping: true,
		dampingFactor: 0.05,
		rotateSpeed:   1,
		zoomSpeed:     1,
		panSpeed:      1,
		minDistance:   0,
		maxDistance:   math32.Inf(1),
		minPolarAngle: 0,
		maxPolarAngle: math32.Pi,
		scale:         1,
	}
	for _, option := range options {
		option(oc)
	}
	oc.Update()
	return oc
}

func (oc *orbitControllerImpl) Camera() Camera {
	return oc.camera
}

func (oc *orbitControllerImpl) Target() mgl32.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControllerImpl) SetTarget(target mgl32.Vec3) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = target
}

func (oc *orbitControllerImpl) DampingEnabled() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.enableDamping
}

func (oc *orbitControllerImpl) SetDampingEnabled(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enableDamping = enabled
}

func (oc *orbitControllerImpl) DampingFactor() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.dampingFactor
}

func (oc *orbitControllerImpl) SetDampingFactor(factor float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.dampingFactor = factor
}

func (oc *orbitControllerImpl) Rotate(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	h := float32(viewportHeight)
	oc.sphericalDelta.theta -= 2 * math32.Pi * dx / h * oc.rotateSpeed
	oc.sphericalDelta.phi -= 2 * math32.Pi * dy / h * oc.rotateSpeed
}

func (oc *orbitControllerImpl) Zoom(delta float32) {
	if delta == 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	step := math32.Pow(0.95, oc.zoomSpeed*math32.Abs(delta))
	if delta > 0 {
		oc.scale *= step
	} else {
		oc.scale /= step
	}
}

func (oc *orbitControllerImpl) Pan(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()

	offset := oc.camera.Position().Sub(oc.target)
	targetDistance := offset.Len() * math32.Tan(oc.camera.Fov()/2)
	h := float32(viewportHeight)

	q := oc.camera.Quaternion()
	right := q.Rotate(mgl32.Vec3{1, 0, 0})
	up := q.Rotate(mgl32.Vec3{0, 1, 0})

	oc.panOffset = oc.panOffset.
		Sub(right.Mul(2 * dx * oc.panSpeed * targetDistance / h)).
		Add(up.Mul(2 * dy * oc.panSpeed * targetDistance / h))
}

func (oc *orbitControllerImpl) Update() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	position := oc.camera.Position()
	orientation := oc.camera.Quaternion()
	toYUp := quatToYUp(oc.camera.Up())

	s := sphericalFromVec(toYUp.Rotate(position.Sub(oc.target)))

	if oc.enableDamping {
		s.theta += oc.sphericalDelta.theta * oc.dampingFactor
		s.phi += oc.sphericalDelta.phi * oc.dampingFactor
		oc.target = oc.target.Add(oc.panOffset.Mul(oc.dampingFactor))
	} else {
		s.theta += oc.sphericalDelta.theta
		s.phi += oc.sphericalDelta.phi
		oc.target = oc.target.Add(oc.panOffset)
	}

	s.phi = mgl32.Clamp(s.phi, oc.minPolarAngle, oc.maxPolarAngle)
	s.phi = mgl32.Clamp(s.phi, polarEpsilon, math32.Pi-polarEpsilon)
	s.radius = mgl32.Clamp(s.radius*oc.scale, oc.minDistance, oc.maxDistance)

	next := oc.target.Add(toYUp.Inverse().Rotate(s.vec()))
	oc.camera.SetPosition(next)
	oc.camera.LookAt(oc.target)

	if oc.enableDamping {
		decay := 1 - oc.dampingFactor
		oc.sphericalDelta.theta *= decay
		oc.sphericalDelta.phi *= decay
		oc.panOffset = oc.panOffset.Mul(decay)
	} else {
		oc.sphericalDelta = spherical{}
		oc.panOffset = mgl32.Vec3{}
	}
	oc.scale = 1

	moved := next.Sub(position).LenSqr() > common.Epsilon
	turned := !common.QuatApproxEqual(orientation, oc.camera.Quaternion(), common.Epsilon)
	return moved || turned
}

func (oc *orbitControllerImpl) Sync() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.sphericalDelta = spherical{}
	oc.panOffset = mgl32.Vec3{}
	oc.scale = 1
}

// quatToYUp returns the rotation taking up onto +Y.
func quatToYUp(up mgl32.Vec3) mgl32.Quat {
	yUp := mgl32.Vec3{0, 1, 0}
	n := up.Normalize()
	if n.ApproxEqualThreshold(yUp, common.Epsilon) {
		return mgl32.QuatIdent()
	}
	if n.ApproxEqualThreshold(yUp.Mul(-1), common.Epsilon) {
		return mgl32.QuatRotate(math32.Pi, mgl32.Vec3{1, 0, 0})
	}
	return mgl32.QuatBetweenVectors(n, yUp)
}
