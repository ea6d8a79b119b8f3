package light

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDirectionalLightPointsTowardSource(t *testing.T) {
	l := NewDirectionalLight(0xffffff, 0.7, mgl32.Vec3{5, 10, 7.5})

	want := mgl32.Vec3{5, 10, 7.5}.Normalize()
	if !common.Vec3ApproxEqual(l.Direction(), want, 1e-5) {
		t.Fatalf("Direction() = %v, want %v", l.Direction(), want)
	}
	if r := l.Radiance(); r.R != 0.7 || r.A != 1 {
		t.Fatalf("Radiance() = %+v", r)
	}
}

func TestAmbientLightHasNoDirection(t *testing.T) {
	l := NewAmbientLight(0xffffff, 0.5)
	if l.Type() != LightTypeAmbient || l.Direction() != (mgl32.Vec3{}) {
		t.Fatalf("ambient light = %v %v", l.Type(), l.Direction())
	}
	if l.Type().String() != "ambient" {
		t.Fatalf("String() = %q", l.Type().String())
	}
}
