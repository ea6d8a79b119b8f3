package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTarget sets the initial orbit pivot.
//
// Parameters:
//   - target: the pivot in world space
//
// Returns:
//   - OrbitControllerOption: functional option to set the target
func WithTarget(target mgl32.Vec3) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.target = target
	}
}

// WithDamping enables or disables inertial damping.
//
// Parameters:
//   - enabled: true to enable damping
//
// Returns:
//   - OrbitControllerOption: functional option to toggle damping
func WithDamping(enabled bool) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.enableDamping = enabled
	}
}

// WithDampingFactor sets the fraction of queued motion applied per Update.
//
// Parameters:
//   - factor: the damping factor in (0, 1]
//
// Returns:
//   - OrbitControllerOption: functional option to set the damping factor
func WithDampingFactor(factor float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.dampingFactor = factor
	}
}

// WithRotateSpeed scales drag-to-orbit sensitivity.
//
// Parameters:
//   - speed: rotation multiplier
//
// Returns:
//   - OrbitControllerOption: functional option to set the rotate speed
func WithRotateSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.rotateSpeed = speed
	}
}

// WithZoomSpeed scales dolly sensitivity.
//
// Parameters:
//   - speed: zoom multiplier
//
// Returns:
//   - OrbitControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.zoomSpeed = speed
	}
}

// WithPanSpeed scales pan sensitivity.
//
// Parameters:
//   - speed: pan multiplier
//
// Returns:
//   - OrbitControllerOption: functional option to set the pan speed
func WithPanSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.panSpeed = speed
	}
}

// WithDistanceBounds limits how close to and far from the target the camera may be.
//
// Parameters:
//   - minDistance: minimum distance from the target
//   - maxDistance: maximum distance from the target
//
// Returns:
//   - OrbitControllerOption: functional option to set the distance bounds
func WithDistanceBounds(minDistance, maxDistance float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minDistance = minDistance
		oc.maxDistance = maxDistance
	}
}

// WithPolarBounds limits the polar angle measured from the up axis.
//
// Parameters:
//   - minAngle: minimum polar angle in radians (0 looks straight down)
//   - maxAngle: maximum polar angle in radians (pi looks straight up)
//
// Returns:
//   - OrbitControllerOption: functional option to set the polar bounds
func WithPolarBounds(minAngle, maxAngle float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minPolarAngle = minAngle
		oc.maxPolarAngle = maxAngle
	}
}
