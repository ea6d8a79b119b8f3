package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	name    string
	enabled atomic.Bool

	mdl       model.Model
	materials []material.Material

	position   mgl32.Vec3
	quaternion mgl32.Quat
	scale      mgl32.Vec3
}

// Intersection describes where a ray hit a GameObject.
type Intersection struct {
	// Distance is the ray parameter of the hit; for a unit-length ray this is the world distance.
	Distance float32

	// Point is the world-space hit position.
	Point mgl32.Vec3

	// MaterialIndex is the material slot of the group containing the hit triangle.
	MaterialIndex int
}

// GameObject defines a renderable scene entity: a Model placed in the world by a position,
// an orientation and a scale, drawn with one material per model group.
type GameObject interface {
	// ID returns the object's identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's name.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Materials returns the material slots indexed by model group MaterialIndex.
	//
	// Returns:
	//   - []material.Material: the material slots
	Materials() []material.Material

	// Material returns the material for slot i. Out-of-range slots resolve to the last
	// material, and an object without materials resolves to a default white material.
	//
	// Parameters:
	//   - i: the material slot
	//
	// Returns:
	//   - material.Material: the material for the slot
	Material(i int) material.Material

	// Position returns the object's world position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Quaternion returns the object's orientation.
	//
	// Returns:
	//   - mgl32.Quat: the orientation
	Quaternion() mgl32.Quat

	// Scale returns the object's per-axis scale.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// ModelMatrix returns translation * rotation * scale.
	//
	// Returns:
	//   - mgl32.Mat4: the local-to-world matrix
	ModelMatrix() mgl32.Mat4

	// WorldVertices transforms the model's vertices into world space and resolves each vertex
	// color through its group's material. Normals of unlit materials are zeroed.
	//
	// Returns:
	//   - []model.Vertex: a new slice of world-space vertices, or nil without a model
	WorldVertices() []model.Vertex

	// Raycast intersects a world-space ray with the object's triangles and reports the nearest hit.
	// Line models are never hit.
	//
	// Parameters:
	//   - ray: the world-space ray
	//
	// Returns:
	//   - Intersection: the nearest hit
	//   - bool: true if the ray hit the object
	Raycast(ray common.Ray) (Intersection, bool)

	// SetID sets the object's identifier.
	//
	// Parameters:
	//   - id: the new identifier
	SetID(id uint64)

	// SetEnabled sets whether the object is drawn.
	//
	// Parameters:
	//   - enabled: true to draw the object
	SetEnabled(enabled bool)

	// SetPosition sets the object's world position.
	//
	// Parameters:
	//   - p: the position
	SetPosition(p mgl32.Vec3)

	// SetQuaternion sets the object's orientation.
	//
	// Parameters:
	//   - q: the orientation
	SetQuaternion(q mgl32.Quat)

	// SetScale sets the object's per-axis scale.
	//
	// Parameters:
	//   - s: the scale
	SetScale(s mgl32.Vec3)
}

var _ GameObject = &gameObject{}

var defaultMaterial = material.NewMaterial(material.WithName("default"))

// NewGameObject creates a new GameObject at the origin with identity orientation and unit scale.
//
// Parameters:
//   - options: variadic list of GameObjectBuilderOption functions
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	g := &gameObject{
		mu:         &sync.Mutex{},
		quaternion: mgl32.QuatIdent(),
		scale:      mgl32.Vec3{1, 1, 1},
	}
	g.enabled.Store(true)
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Materials() []material.Material {
	return g.materials
}

func (g *gameObject) Material(i int) material.Material {
	if len(g.materials) == 0 {
		return defaultMaterial
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g.materials) {
		i = len(g.materials) - 1
	}
	return g.materials[i]
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) Quaternion() mgl32.Quat {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.quaternion
}

func (g *gameObject) Scale() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.modelMatrix()
}

func (g *gameObject) WorldVertices() []model.Vertex {
	if g.mdl == nil {
		return nil
	}
	m := g.ModelMatrix()
	normalMatrix := m.Mat3().Inv().Transpose()
	src := g.mdl.Vertices()
	out := make([]model.Vertex, len(src))

	for _, group := range g.mdl.Groups() {
		mat := g.Material(group.MaterialIndex)
		for i := group.Start; i < group.Start+group.Count && i < len(src); i++ {
			v := src[i]
			out[i].Position = m.Mul4x1(mgl32.Vec3(v.Position).Vec4(1)).Vec3()
			out[i].Color = mat.Shade(v.Color)
			n := mgl32.Vec3(v.Normal)
			if mat.Lit() && n.LenSqr() > 0 {
				out[i].Normal = normalMatrix.Mul3x1(n).Normalize()
			}
		}
	}
	return out
}

func (g *gameObject) Raycast(ray common.Ray) (Intersection, bool) {
	if g.mdl == nil || g.mdl.Topology() != model.TopologyTriangles {
		return Intersection{}, false
	}
	m := g.ModelMatrix()
	local := ray.Transform(m.Inv())
	verts := g.mdl.Vertices()

	best := Intersection{}
	hit := false
	for _, group := range g.mdl.Groups() {
		end := min(group.Start+group.Count, len(verts))
		for i := group.Start; i+2 < end; i += 3 {
			t, ok := local.IntersectTriangle(
				mgl32.Vec3(verts[i].Position),
				mgl32.Vec3(verts[i+1].Position),
				mgl32.Vec3(verts[i+2].Position),
			)
			if !ok || (hit && t >= best.Distance) {
				continue
			}
			hit = true
			best = Intersection{Distance: t, Point: ray.At(t), MaterialIndex: group.MaterialIndex}
		}
	}
	return best, hit
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = p
}

func (g *gameObject) SetQuaternion(q mgl32.Quat) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.quaternion = q.Normalize()
}

func (g *gameObject) SetScale(s mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = s
}

// modelMatrix composes T * R * S. Caller must hold the mutex.
func (g *gameObject) modelMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(g.position.X(), g.position.Y(), g.position.Z())
	s := mgl32.Scale3D(g.scale.X(), g.scale.Y(), g.scale.Z())
	return t.Mul4(g.quaternion.Mat4()).Mul4(s)
}
