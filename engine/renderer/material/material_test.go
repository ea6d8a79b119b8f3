package material

import "testing"

func TestShade(t *testing.T) {
	red := NewBasicMaterial(0xff0000)
	if got := red.Shade([4]float32{0, 1, 0, 1}); got != [4]float32{1, 0, 0, 1} {
		t.Fatalf("basic Shade = %v, want solid red", got)
	}
	if red.Lit() || red.VertexColors() {
		t.Fatal("basic material must be unlit without vertex colors")
	}

	line := NewLineMaterial()
	vc := [4]float32{0.25, 0.5, 0.75, 1}
	if got := line.Shade(vc); got != vc {
		t.Fatalf("line Shade = %v, want vertex color %v", got, vc)
	}
}
