package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/game_object"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/light"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewMainSceneContents(t *testing.T) {
	s := NewMainScene()

	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 (grid)", s.Count())
	}
	grid := s.Objects()[0]
	if grid.Model().Topology() != model.TopologyLines {
		t.Fatal("grid must be drawn as lines")
	}

	lights := s.Lights()
	if len(lights) != 2 {
		t.Fatalf("len(Lights()) = %d, want 2", len(lights))
	}
	if lights[0].Type() != light.LightTypeAmbient || lights[0].Intensity() != 0.5 {
		t.Fatalf("ambient light = %v %v", lights[0].Type(), lights[0].Intensity())
	}
	if lights[1].Type() != light.LightTypeDirectional || lights[1].Intensity() != 0.7 {
		t.Fatalf("directional light = %v %v", lights[1].Type(), lights[1].Intensity())
	}
	if lights[1].Position() != (mgl32.Vec3{5, 10, 7.5}) {
		t.Fatalf("directional position = %v", lights[1].Position())
	}

	fog := s.Fog()
	if fog == nil || fog.Color.Hex() != 0x202020 || fog.Near != 30 || fog.Far != 80 {
		t.Fatalf("Fog() = %+v", fog)
	}
}

func TestPrepareKeepsOrderAndSplitsTopology(t *testing.T) {
	s := NewScene("test", WithComputeWorkers(4))

	var cubes []game_object.GameObject
	for i := range 8 {
		cube := game_object.NewGameObject(
			game_object.WithModel(model.NewBox(1, 1, 1)),
			game_object.WithMaterials(material.NewBasicMaterial(0xff0000)),
			game_object.WithPosition(mgl32.Vec3{float32(i) * 10, 0, 0}),
		)
		s.Add(cube)
		cubes = append(cubes, cube)
	}
	s.Add(game_object.NewGameObject(
		game_object.WithModel(model.NewGrid(4, 4, common.Color{A: 1}, common.Color{A: 1})),
		game_object.WithMaterials(material.NewLineMaterial()),
	))
	hidden := game_object.NewGameObject(
		game_object.WithModel(model.NewBox(1, 1, 1)),
		game_object.WithEnabled(false),
	)
	s.Add(hidden)

	list := s.Prepare()
	if len(list.Triangles) != 8*36 {
		t.Fatalf("len(Triangles) = %d, want %d", len(list.Triangles), 8*36)
	}
	if len(list.Lines) != 2*2*5 {
		t.Fatalf("len(Lines) = %d, want 20", len(list.Lines))
	}
	for i := range cubes {
		x := list.Triangles[i*36].Position[0]
		if x < float32(i)*10-1 || x > float32(i)*10+1 {
			t.Fatalf("cube %d vertices out of order: x = %v", i, x)
		}
	}
}

func TestAddAssignsIDsAndRemove(t *testing.T) {
	s := NewScene("ids")
	a := s.Add(game_object.NewGameObject())
	b := s.Add(game_object.NewGameObject())
	if a == 0 || a == b {
		t.Fatalf("ids = %d, %d", a, b)
	}
	if s.Get(b) == nil {
		t.Fatal("Get returned nil for a known id")
	}
	s.Remove(a)
	if s.Count() != 1 || s.Get(a) != nil {
		t.Fatal("Remove did not delete the object")
	}
}

func TestLightsAndFog(t *testing.T) {
	s := NewScene("lights")
	l := light.NewAmbientLight(0xffffff, 1)
	s.AddLight(l)
	s.RemoveLight(l)
	if len(s.Lights()) != 0 {
		t.Fatal("RemoveLight did not delete the light")
	}
	s.SetFog(&Fog{Near: 1, Far: 2})
	s.SetFog(nil)
	if s.Fog() != nil {
		t.Fatal("SetFog(nil) must disable fog")
	}
}
