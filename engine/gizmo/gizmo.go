package gizmo

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewcube/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Overlay placement and click normalization.
const (
	OverlayID     = "control-renderer"
	OverlaySize   = 100
	OverlayMargin = 10

	// ClickBasis is the fixed size clicks are normalized against, independent of the overlay's
	// actual size.
	ClickBasis float64 = 100

	CubeScale float32 = 1.5
)

// Gizmo camera.
const (
	CameraFov    float32 = 50
	CameraAspect float32 = 1
	CameraNear   float32 = 0.1
	CameraFar    float32 = 100
)

// CameraPosition is where the gizmo camera sits, looking down -Z at the cube.
var CameraPosition = mgl32.Vec3{0, 0, 3}

// FaceColors are the cube face colors in box face order +X, -X, +Y, -Y, +Z, -Z.
var FaceColors = [6]uint32{0xff0000, 0x00ff00, 0x0000ff, 0xffff00, 0x00ffff, 0xff00ff}

// Directions are the main camera positions a click on each face snaps to, index-aligned with FaceColors.
var Directions = [6]mgl32.Vec3{
	{10, 0, 0},
	{-10, 0, 0},
	{0, 10, 0},
	{0, -10, 0},
	{0, 0, 10},
	{0, 0, -10},
}

type gizmo struct {
	mu *sync.Mutex

	overlayID string
	cubeScale float32

	scene   scene.Scene
	camera  camera.Camera
	cube    game_object.GameObject
	overlay renderer.Renderer
}

// Gizmo is the view-cube overlay: a colored cube that mirrors the main camera's orientation and
// snaps the main camera to an axis view when one of its faces is clicked.
type Gizmo interface {
	// Scene returns the gizmo scene, which holds only the cube.
	//
	// Returns:
	//   - scene.Scene: the gizmo scene
	Scene() scene.Scene

	// Camera returns the fixed gizmo camera.
	//
	// Returns:
	//   - camera.Camera: the gizmo camera
	Camera() camera.Camera

	// Cube returns the view cube.
	//
	// Returns:
	//   - game_object.GameObject: the cube
	Cube() game_object.GameObject

	// Overlay returns the overlay renderer the gizmo draws into.
	//
	// Returns:
	//   - renderer.Renderer: the overlay renderer
	Overlay() renderer.Renderer

	// HandleClick picks the cube face under an overlay-local click and, on a hit, moves mainCam
	// to that face's direction, aims it at the origin and cancels any pending orbit inertia.
	// The snap is exact: damped motion still queued in controller is discarded rather than
	// allowed to finish, so the camera does not drift off the chosen direction afterwards.
	//
	// Parameters:
	//   - offsetX, offsetY: click position relative to the overlay's top-left, in logical pixels
	//   - mainCam: the camera to reposition
	//   - controller: the orbit controller driving mainCam (may be nil)
	//
	// Returns:
	//   - bool: true if a face was hit
	HandleClick(offsetX, offsetY float64, mainCam camera.Camera, controller camera.OrbitController) bool

	// Sync sets the cube orientation to the inverse of mainCam's orientation.
	//
	// Parameters:
	//   - mainCam: the camera to mirror
	Sync(mainCam camera.Camera)

	// Render draws the gizmo scene into the overlay.
	//
	// Returns:
	//   - error: an error from the backend
	Render() error
}

var _ Gizmo = &gizmo{}

// NewGizmo builds the gizmo scene, camera and cube and acquires the overlay renderer from
// registry. If an overlay with the same identifier already exists it is reused, so at most one
// overlay exists per identifier.
//
// Parameters:
//   - registry: the overlay registry (must not be nil)
//   - backend: the backend shared with the main renderer
//   - surface: the surface the overlay is anchored to
//   - options: functional options to configure the gizmo
//
// Returns:
//   - Gizmo: the newly created gizmo
func NewGizmo(registry *renderer.OverlayRegistry, backend renderer.Backend, surface renderer.Surface, options ...GizmoBuilderOption) Gizmo {
	if registry == nil {
		panic("gizmo: NewGizmo requires an OverlayRegistry")
	}
	g := &gizmo{
		mu:        &sync.Mutex{},
		overlayID: OverlayID,
		cubeScale: CubeScale,
	}
	for _, opt := range options {
		opt(g)
	}

	materials := make([]material.Material, len(FaceColors))
	for i, hex := range FaceColors {
		materials[i] = material.NewBasicMaterial(hex)
	}
	g.cube = game_object.NewGameObject(
		game_object.WithName("view-cube"),
		game_object.WithModel(model.NewBox(1, 1, 1)),
		game_object.WithMaterials(materials...),
		game_object.WithUniformScale(g.cubeScale),
	)
	g.scene = scene.NewScene("gizmo", scene.WithObjects(g.cube), scene.WithComputeWorkers(1))

	g.camera = camera.NewCamera(
		camera.WithFovDegrees(CameraFov),
		camera.WithAspect(CameraAspect),
		camera.WithNear(CameraNear),
		camera.WithFar(CameraFar),
		camera.WithPosition(CameraPosition),
	)

	g.overlay, _ = registry.Acquire(g.overlayID, func() renderer.Renderer {
		return renderer.NewRenderer(backend, surface,
			renderer.WithLabel(g.overlayID),
			renderer.WithSize(OverlaySize, OverlaySize),
			renderer.WithAnchor(renderer.AnchorTopRight, OverlayMargin, OverlayMargin),
			renderer.WithAlpha(true),
		)
	})
	return g
}

func (g *gizmo) Scene() scene.Scene {
	return g.scene
}

func (g *gizmo) Camera() camera.Camera {
	return g.camera
}

func (g *gizmo) Cube() game_object.GameObject {
	return g.cube
}

func (g *gizmo) Overlay() renderer.Renderer {
	return g.overlay
}

func (g *gizmo) HandleClick(offsetX, offsetY float64, mainCam camera.Camera, controller camera.OrbitController) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ndcX := float32(offsetX/ClickBasis*2 - 1)
	ndcY := float32(-(offsetY/ClickBasis)*2 + 1)

	hit, ok := g.cube.Raycast(g.camera.Ray(ndcX, ndcY))
	if !ok || hit.MaterialIndex < 0 || hit.MaterialIndex >= len(Directions) {
		return false
	}

	mainCam.SetPosition(Directions[hit.MaterialIndex])
	mainCam.LookAt(mgl32.Vec3{})
	if controller != nil {
		controller.Sync()
	}
	return true
}

func (g *gizmo) Sync(mainCam camera.Camera) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cube.SetQuaternion(mainCam.Quaternion().Inverse())
}

func (g *gizmo) Render() error {
	return g.overlay.Render(g.scene, g.camera)
}
