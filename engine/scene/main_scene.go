package scene

import (
	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/light"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// Main scene contents.
const (
	GridSize            float32 = 100
	GridDivisions               = 100
	GridCenterColor     uint32  = 0x888888
	GridColor           uint32  = 0x444444
	AmbientColor        uint32  = 0xffffff
	AmbientIntensity    float32 = 0.5
	DirectionalColor    uint32  = 0xffffff
	DirectionalStrength float32 = 0.7
	FogColor            uint32  = 0x202020
	FogNear             float32 = 30
	FogFar              float32 = 80
)

// DirectionalPosition is where the main scene's directional light sits; it shines at the origin.
var DirectionalPosition = mgl32.Vec3{5, 10, 7.5}

// NewMainScene builds the viewport's world: a ground grid, an ambient light, a directional
// light and linear fog.
//
// Parameters:
//   - options: extra options applied after the defaults
//
// Returns:
//   - Scene: the populated scene
func NewMainScene(options ...SceneBuilderOption) Scene {
	grid := game_object.NewGameObject(
		game_object.WithName("grid"),
		game_object.WithModel(model.NewGrid(GridSize, GridDivisions,
			common.ColorFromHex(GridCenterColor),
			common.ColorFromHex(GridColor),
		)),
		game_object.WithMaterials(material.NewLineMaterial()),
	)

	defaults := []SceneBuilderOption{
		WithObjects(grid),
		WithLights(
			light.NewAmbientLight(AmbientColor, AmbientIntensity),
			light.NewDirectionalLight(DirectionalColor, DirectionalStrength, DirectionalPosition),
		),
		WithFog(Fog{Color: common.ColorFromHex(FogColor), Near: FogNear, Far: FogFar}),
	}
	return NewScene("main", append(defaults, options...)...)
}
