package common

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance used for degenerate-vector and parallel-ray checks.
const Epsilon float32 = 1e-6

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// Perspective creates a finite perspective projection matrix mapping view-space depth
// into the WebGPU clip range [0, 1]. The matrix is column-major (mgl32 layout).
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1 / math32.Tan(fovY/2)
	rangeInv := 1 / (near - far)

	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far * rangeInv
	m[11] = -1
	m[14] = near * far * rangeInv
	return m
}

// LookAtQuat returns the orientation of an object at eye whose -Z axis points at target.
// When the view direction is parallel to up the direction is nudged slightly so the basis
// stays well defined, which keeps straight-down and straight-up views usable.
//
// Parameters:
//   - eye: the position of the object
//   - target: the point to face
//   - up: the world up direction
//
// Returns:
//   - mgl32.Quat: the resulting orientation
func LookAtQuat(eye, target, up mgl32.Vec3) mgl32.Quat {
	z := eye.Sub(target)
	if z.Len() < Epsilon {
		z = mgl32.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() < Epsilon {
		if math32.Abs(up.Z()) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	basis := mgl32.Mat3FromCols(x, y, z)
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
}

// QuatApproxEqual reports whether two quaternions describe the same rotation within tol.
// q and -q are treated as equal.
func QuatApproxEqual(a, b mgl32.Quat, tol float32) bool {
	d := math32.Abs(a.Dot(b))
	return math32.Abs(1-d) <= tol
}

// Vec3ApproxEqual reports whether every component of a and b differs by at most tol.
func Vec3ApproxEqual(a, b mgl32.Vec3, tol float32) bool {
	for i := range 3 {
		if math32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
