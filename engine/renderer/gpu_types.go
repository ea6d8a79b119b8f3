package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-viewcube/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/light"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/scene"
)

// basicShaderSource holds both entry points (vs_main, fs_main) shared by the line and
// triangle pipelines. Its Frame struct matches GPUFrameUniform.
//
//go:embed assets/basic.wgsl
var basicShaderSource string

// GPUFrameUniform is the per-pass uniform block. Matches the WGSL Frame struct (208 bytes).
type GPUFrameUniform struct {
	ViewProj   [16]float32 // offset   0
	View       [16]float32 // offset  64
	Ambient    [4]float32  // offset 128: rgb summed ambient radiance
	LightDir   [4]float32  // offset 144: xyz unit direction toward the light, w enabled (0 or 1)
	LightColor [4]float32  // offset 160: rgb directional radiance
	FogColor   [4]float32  // offset 176: rgb fog color, w enabled (0 or 1)
	FogRange   [4]float32  // offset 192: x near, y far
}

// Size returns the size of the GPUFrameUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (208)
func (g *GPUFrameUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a little-endian byte buffer for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	off := 0
	put := func(values ...float32) {
		for _, v := range values {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
			off += 4
		}
	}
	put(g.ViewProj[:]...)
	put(g.View[:]...)
	put(g.Ambient[:]...)
	put(g.LightDir[:]...)
	put(g.LightColor[:]...)
	put(g.FogColor[:]...)
	put(g.FogRange[:]...)
	return buf
}

// newFrameUniform gathers camera matrices, lighting and fog for one pass. Enabled ambient
// lights are summed; only the first enabled directional light is used.
func newFrameUniform(cam camera.Camera, s scene.Scene) GPUFrameUniform {
	u := GPUFrameUniform{
		ViewProj: cam.ViewProjectionMatrix(),
		View:     cam.ViewMatrix(),
		LightDir: [4]float32{0, 1, 0, 0},
	}

	haveDirectional := false
	for _, l := range s.Lights() {
		if !l.Enabled() {
			continue
		}
		radiance := l.Radiance()
		switch l.Type() {
		case light.LightTypeAmbient:
			u.Ambient[0] += radiance.R
			u.Ambient[1] += radiance.G
			u.Ambient[2] += radiance.B
		case light.LightTypeDirectional:
			if haveDirectional {
				continue
			}
			haveDirectional = true
			d := l.Direction()
			u.LightDir = [4]float32{d.X(), d.Y(), d.Z(), 1}
			u.LightColor = [4]float32{radiance.R, radiance.G, radiance.B, 1}
		}
	}

	if fog := s.Fog(); fog != nil {
		u.FogColor = [4]float32{fog.Color.R, fog.Color.G, fog.Color.B, 1}
		u.FogRange = [4]float32{fog.Near, fog.Far, 0, 0}
	}
	return u
}
