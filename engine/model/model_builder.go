package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithTopology is an option builder that sets the primitive topology of the Model.
//
// Parameters:
//   - topology: TopologyTriangles or TopologyLines
//
// Returns:
//   - ModelBuilderOption: a function that applies the topology option to a model
func WithTopology(topology Topology) ModelBuilderOption {
	return func(m *model) {
		m.topology = topology
	}
}

// WithVertices is an option builder that sets the local-space vertices of the Model.
//
// Parameters:
//   - vertices: the vertex list
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []Vertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithGroups is an option builder that partitions the vertices into material groups.
//
// Parameters:
//   - groups: the material groups in vertex order
//
// Returns:
//   - ModelBuilderOption: a function that applies the groups option to a model
func WithGroups(groups []Group) ModelBuilderOption {
	return func(m *model) {
		m.groups = groups
	}
}
