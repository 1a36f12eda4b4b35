// pkg/losmesh/config.go
package losmesh

import "math"

const (
	DefaultArcAngle  = 120.0
	DefaultAngleStep = 1.0
	DefaultRadius    = 500.0

	FullCircle = 360.0

	// MinAngleStep keeps the vertex count addressable by 16-bit indices.
	MinAngleStep = 0.01

	// sweepEpsilon absorbs float error in the inclusive sweep bound.
	sweepEpsilon = 1e-6
)

// FanConfig describes the visibility wedge. Angles are in degrees.
type FanConfig struct {
	ArcAngle  float64 `mapstructure:"arc_angle" yaml:"arc_angle"`
	AngleStep float64 `mapstructure:"angle_step" yaml:"angle_step"`
	Radius    float64 `mapstructure:"radius" yaml:"radius"`
}

// DefaultFanConfig returns the 120° / 1° / 500 wedge.
func DefaultFanConfig() FanConfig {
	return FanConfig{
		ArcAngle:  DefaultArcAngle,
		AngleStep: DefaultAngleStep,
		Radius:    DefaultRadius,
	}
}

// Normalized clamps the config into a usable range. Unset (zero) or negative
// values take the defaults; it never fails.
func (c FanConfig) Normalized() FanConfig {
	if c.ArcAngle <= 0 || math.IsNaN(c.ArcAngle) {
		c.ArcAngle = DefaultArcAngle
	}
	if c.ArcAngle > FullCircle {
		c.ArcAngle = FullCircle
	}
	if c.AngleStep <= 0 || math.IsNaN(c.AngleStep) {
		c.AngleStep = DefaultAngleStep
	}
	if c.AngleStep < MinAngleStep {
		c.AngleStep = MinAngleStep
	}
	if c.AngleStep > c.ArcAngle {
		c.AngleStep = c.ArcAngle
	}
	if c.Radius <= 0 || math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) {
		c.Radius = DefaultRadius
	}
	return c
}

// IsCircle reports whether the arc closes into a full disc.
func (c FanConfig) IsCircle() bool {
	return c.ArcAngle == FullCircle
}

// VertexCount is round(arc/step) + 2: the apex, one per sampled angle and the
// closing vertex of a full circle. Rounds half up.
func (c FanConfig) VertexCount() int {
	if c.AngleStep <= 0 {
		return 0
	}
	return int(math.Floor(c.ArcAngle/c.AngleStep+0.5)) + 2
}

// IndexCount is the length of the triangle index buffer.
func (c FanConfig) IndexCount() int {
	n := c.VertexCount()
	if c.IsCircle() {
		n--
	} else {
		n -= 2
	}
	if n < 0 {
		return 0
	}
	return n * 3
}

// TriangleCount is IndexCount / 3.
func (c FanConfig) TriangleCount() int {
	return c.IndexCount() / 3
}

// SampleCount is the number of rays in one sweep. The inclusive sweep from
// -arc/2 to +arc/2 yields floor(arc/step)+1 angles, bounded by the vertex
// slots available after the apex.
func (c FanConfig) SampleCount() int {
	if c.AngleStep <= 0 {
		return 0
	}
	n := int(math.Floor(c.ArcAngle/c.AngleStep+sweepEpsilon)) + 1
	if slots := c.VertexCount() - 1; n > slots {
		n = slots
	}
	return n
}

// SampleAngle returns the i-th ray angle of a sweep, relative to forward.
// Ascending sweeps start at -arc/2, descending ones at +arc/2.
func (c FanConfig) SampleAngle(i int, descending bool) float64 {
	half := c.ArcAngle / 2
	if descending {
		return half - float64(i)*c.AngleStep
	}
	return -half + float64(i)*c.AngleStep
}
