package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	up         mgl32.Vec3
	position   mgl32.Vec3
	quaternion mgl32.Quat

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix              mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	inverseProjectionMatrix mgl32.Mat4
}

// Camera defines a perspective camera placed in the world by a position and an orientation.
// The camera looks down its local -Z axis. Projection matrices use the WebGPU depth range [0, 1].
type Camera interface {
	// Up returns the world up direction used by LookAt and the orbit controller.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Position returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// Quaternion returns the camera orientation.
	//
	// Returns:
	//   - mgl32.Quat: the camera orientation
	Quaternion() mgl32.Quat

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the world-to-view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the view-to-clip matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Ray builds a world-space picking ray from the camera position through a point given in
	// normalized device coordinates, where (-1, -1) is the bottom-left and (1, 1) the top-right.
	//
	// Parameters:
	//   - ndcX: horizontal device coordinate
	//   - ndcY: vertical device coordinate
	//
	// Returns:
	//   - common.Ray: the picking ray with a unit direction
	Ray(ndcX, ndcY float32) common.Ray

	// SetPosition moves the camera without changing its orientation.
	//
	// Parameters:
	//   - p: the new world position
	SetPosition(p mgl32.Vec3)

	// SetQuaternion replaces the camera orientation.
	//
	// Parameters:
	//   - q: the new orientation
	SetQuaternion(q mgl32.Quat)

	// LookAt rotates the camera so its view direction points at target.
	//
	// Parameters:
	//   - target: the world point to face
	LookAt(target mgl32.Vec3)

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl32.Vec3)

	// SetFov sets the field of view in radians and refreshes the projection.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and refreshes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and refreshes the projection.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and refreshes the projection.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new perspective Camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		up:         mgl32.Vec3{0, 1, 0},
		quaternion: mgl32.QuatIdent(),
		fov:        mgl32.DegToRad(50),
		aspect:     1.0,
		near:       0.1,
		far:        2000.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateProjection()
	c.updateView()
	return c
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Quaternion() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quaternion
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix.Mul4(c.viewMatrix)
}

func (c *cameraImpl) Ray(ndcX, ndcY float32) common.Ray {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Any depth inside the clip volume lies on the same ray; 0.5 avoids the near plane.
	viewPoint := c.inverseProjectionMatrix.Mul4x1(mgl32.Vec4{ndcX, ndcY, 0.5, 1})
	viewPoint = viewPoint.Mul(1 / viewPoint.W())
	world := c.worldMatrix().Mul4x1(viewPoint).Vec3()

	return common.Ray{
		Origin:    c.position,
		Direction: world.Sub(c.position).Normalize(),
	}
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
	c.updateView()
}

func (c *cameraImpl) SetQuaternion(q mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quaternion = q.Normalize()
	c.updateView()
}

func (c *cameraImpl) LookAt(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quaternion = common.LookAtQuat(c.position, target, c.up)
	c.updateView()
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateProjection()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateProjection()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateProjection()
}

// worldMatrix returns the camera-to-world transform. Caller must hold the mutex.
func (c *cameraImpl) worldMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).Mul4(c.quaternion.Mat4())
}

// updateView recomputes the view matrix from position and orientation. Caller must hold the mutex.
func (c *cameraImpl) updateView() {
	c.viewMatrix = c.worldMatrix().Inv()
}

// updateProjection recomputes the projection and its inverse. Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.inverseProjectionMatrix = c.projectionMatrix.Inv()
}
