package model

import "unsafe"

// Topology describes how a Model's vertex list is assembled into primitives.
type Topology int

const (
	// TopologyTriangles assembles every three vertices into a triangle.
	TopologyTriangles Topology = iota

	// TopologyLines assembles every two vertices into a line segment.
	TopologyLines
)

// Vertex is a single interleaved vertex as uploaded to the GPU.
// Layout: position (offset 0), normal (offset 12), color (offset 24). Stride: 40 bytes.
// A zero Normal marks the vertex as unlit.
type Vertex struct {
	// Position is the vertex position.
	Position [3]float32

	// Normal is the surface normal, or zero for unlit geometry.
	Normal [3]float32

	// Color is the linear RGBA vertex color.
	Color [4]float32
}

// VertexStride is the size of Vertex in bytes.
const VertexStride = uint64(unsafe.Sizeof(Vertex{}))

// Group is a contiguous range of vertices drawn with one material slot.
type Group struct {
	// Start is the index of the first vertex in the group.
	Start int

	// Count is the number of vertices in the group.
	Count int

	// MaterialIndex selects the material slot used by the group.
	MaterialIndex int
}
