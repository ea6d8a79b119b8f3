package model

// model is the implementation of the Model interface.
type model struct {
	name     string
	topology Topology
	vertices []Vertex
	groups   []Group
}

// Model is immutable geometry in local space: an unindexed vertex list plus the material groups
// that partition it. Models are shared freely between game objects.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Topology reports whether the vertices form triangles or line segments.
	//
	// Returns:
	//   - Topology: the primitive topology
	Topology() Topology

	// Vertices retrieves the local-space vertex list. Callers must not modify it.
	//
	// Returns:
	//   - []Vertex: the vertices
	Vertices() []Vertex

	// Groups retrieves the material groups. A model built without groups reports a single
	// group covering every vertex with material slot 0.
	//
	// Returns:
	//   - []Group: the material groups in vertex order
	Groups() []Group

	// VertexCount returns the number of vertices.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int
}

var _ Model = &model{}

// NewModel creates a Model from the supplied options.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{topology: TopologyTriangles}
	for _, option := range options {
		option(m)
	}
	if len(m.groups) == 0 && len(m.vertices) > 0 {
		m.groups = []Group{{Start: 0, Count: len(m.vertices), MaterialIndex: 0}}
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Topology() Topology {
	return m.topology
}

func (m *model) Vertices() []Vertex {
	return m.vertices
}

func (m *model) Groups() []Group {
	return m.groups
}

func (m *model) VertexCount() int {
	return len(m.vertices)
}
