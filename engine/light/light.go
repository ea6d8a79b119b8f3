package light

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every surface equally from all directions.
	LightTypeAmbient LightType = iota

	// LightTypeDirectional represents a distant source shining from its position toward its
	// target. Only the direction matters; there is no attenuation.
	LightTypeDirectional
)

func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "ambient"
	case LightTypeDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	lightType LightType
	position  mgl32.Vec3
	target    mgl32.Vec3
	color     common.Color
	intensity float32
	enabled   bool
}

// Light defines the interface for a light source in the scene.
//
// Lights only affect materials built with material.WithLit. The renderer folds every enabled
// ambient light into one ambient term and uses the first enabled directional light.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type
	Type() LightType

	// Position returns the world-space position of the light. Ignored for ambient lights.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Target returns the point a directional light shines toward.
	//
	// Returns:
	//   - mgl32.Vec3: the target
	Target() mgl32.Vec3

	// Direction returns the unit vector from the target toward the light, the direction
	// surfaces must face to be fully lit. Zero for ambient lights.
	//
	// Returns:
	//   - mgl32.Vec3: the direction toward the light
	Direction() mgl32.Vec3

	// Color returns the light color.
	//
	// Returns:
	//   - common.Color: the color
	Color() common.Color

	// Intensity returns the scalar intensity multiplier.
	//
	// Returns:
	//   - float32: the intensity
	Intensity() float32

	// Radiance returns Color scaled by Intensity.
	//
	// Returns:
	//   - common.Color: the effective color
	Radiance() common.Color

	// Enabled returns whether this light contributes to rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetPosition moves the light.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// SetTarget changes where a directional light shines.
	//
	// Parameters:
	//   - t: the new target
	SetTarget(t mgl32.Vec3)

	// SetColor sets the light color.
	//
	// Parameters:
	//   - c: the color
	SetColor(c common.Color)

	// SetIntensity sets the intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity
	SetIntensity(intensity float32)

	// SetEnabled toggles the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a white light of intensity 1 of the given type.
//
// Parameters:
//   - lightType: the kind of light
//   - opts: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:        &sync.Mutex{},
		lightType: lightType,
		position:  mgl32.Vec3{0, 1, 0},
		color:     common.Color{R: 1, G: 1, B: 1, A: 1},
		intensity: 1,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewAmbientLight creates an ambient light of a hex color and intensity.
func NewAmbientLight(hex uint32, intensity float32) Light {
	return NewLight(LightTypeAmbient, WithColor(common.ColorFromHex(hex)), WithIntensity(intensity))
}

// NewDirectionalLight creates a directional light of a hex color and intensity aimed at the origin.
func NewDirectionalLight(hex uint32, intensity float32, position mgl32.Vec3) Light {
	return NewLight(LightTypeDirectional,
		WithColor(common.ColorFromHex(hex)),
		WithIntensity(intensity),
		WithPosition(position),
	)
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightImpl) Target() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.target
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lightType != LightTypeDirectional {
		return mgl32.Vec3{}
	}
	d := l.position.Sub(l.target)
	if d.Len() < common.Epsilon {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Normalize()
}

func (l *lightImpl) Color() common.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Radiance() common.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color.Scale(l.intensity)
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) SetPosition(p mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = p
}

func (l *lightImpl) SetTarget(t mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = t
}

func (l *lightImpl) SetColor(c common.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}
