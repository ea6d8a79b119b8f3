package scene

import (
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/light"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
)

// Fog fades fragments linearly toward Color between Near and Far view-space distances.
type Fog struct {
	Color common.Color
	Near  float32
	Far   float32
}

// DrawList is a scene flattened into world-space vertices ready for upload.
type DrawList struct {
	// Lines holds line-list vertices, two per segment.
	Lines []model.Vertex

	// Triangles holds triangle-list vertices, three per triangle.
	Triangles []model.Vertex
}

// Scene is a flat collection of game objects and lights with optional fog.
// A Scene holds no GPU state; renderers read it through Prepare, Lights and Fog.
type Scene interface {
	// Name returns the scene name.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Add inserts an object and returns its ID. Objects without an ID are assigned one.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove deletes the object with the given ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Objects returns the objects in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: a copy of the object list
	Objects() []game_object.GameObject

	// Count returns the number of objects.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// AddLight adds a light to the scene.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// RemoveLight removes a light from the scene.
	//
	// Parameters:
	//   - l: the light to remove
	RemoveLight(l light.Light)

	// Lights returns the scene's lights in insertion order.
	//
	// Returns:
	//   - []light.Light: a copy of the light list
	Lights() []light.Light

	// Fog returns the scene fog, or nil when fog is off.
	//
	// Returns:
	//   - *Fog: the fog settings or nil
	Fog() *Fog

	// SetFog replaces the scene fog. Pass nil to disable fog.
	//
	// Parameters:
	//   - fog: the fog settings or nil
	SetFog(fog *Fog)

	// Prepare flattens every enabled object into world space. Objects are processed in
	// parallel on the scene's worker pool; the result keeps insertion order.
	//
	// Returns:
	//   - DrawList: the world-space vertices grouped by topology
	Prepare() DrawList
}

type scene struct {
	mu *sync.RWMutex

	name    string
	objects []game_object.GameObject
	nextID  uint64
	lights  []light.Light
	fog     *Fog

	// computePool runs the per-object flattening in Prepare.
	computeWorkers int
	computePool    worker.DynamicWorkerPool
}

var _ Scene = &scene{}

// NewScene creates an empty Scene.
//
// Parameters:
//   - name: the scene name
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		nextID:         1,
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Created after options so WithComputeWorkers can override the default.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add registers obj. Caller must hold the write lock.
func (s *scene) add(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.objects = append(s.objects, obj)
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obj := range s.objects {
		if obj.ID() == id {
			return obj
		}
	}
	return nil
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = slices.DeleteFunc(s.objects, func(obj game_object.GameObject) bool {
		return obj.ID() == id
	})
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.objects)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = slices.DeleteFunc(s.lights, func(existing light.Light) bool {
		return existing == l
	})
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lights)
}

func (s *scene) Fog() *Fog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fog
}

func (s *scene) SetFog(fog *Fog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fog = fog
}

func (s *scene) Prepare() DrawList {
	objects := s.Objects()
	results := make([][]model.Vertex, len(objects))

	// A WaitGroup is the per-frame barrier; pool.Wait blocks until workers idle-exit.
	var wg sync.WaitGroup
	for i, obj := range objects {
		if !obj.Enabled() || obj.Model() == nil {
			continue
		}
		wg.Add(1)
		s.computePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				results[i] = obj.WorldVertices()
				return nil, nil
			},
		})
	}
	wg.Wait()

	var out DrawList
	for i, obj := range objects {
		if results[i] == nil {
			continue
		}
		switch obj.Model().Topology() {
		case model.TopologyLines:
			out.Lines = append(out.Lines, results[i]...)
		default:
			out.Triangles = append(out.Triangles, results[i]...)
		}
	}
	return out
}
