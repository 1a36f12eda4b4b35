// pkg/level/level.go
package level

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// DefaultLevel is the bundled level used when no file is given.
const DefaultLevel = "warehouse"

//go:embed levels/*.yaml
var bundled embed.FS

// ErrInvalidLevel wraps every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Point is a position on the ground plane.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, 0}
}

// Wall is an axis-aligned block. Transparent walls stop movement but not
// sight (glass, low crates).
type Wall struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	W           float64 `yaml:"w"`
	H           float64 `yaml:"h"`
	Transparent bool    `yaml:"transparent,omitempty"`
}

func (w Wall) MaxX() float64 { return w.X + w.W }
func (w Wall) MaxY() float64 { return w.Y + w.H }

// Contains reports whether p lies inside the wall, edges included.
func (w Wall) Contains(x, y float64) bool {
	return x >= w.X && x <= w.MaxX() && y >= w.Y && y <= w.MaxY()
}

// Level is a rectangular floor with walls on it.
type Level struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Spawn  Point   `yaml:"spawn"`
	Walls  []Wall  `yaml:"walls"`
}

// InBounds reports whether (x, y) is on the floor.
func (l *Level) InBounds(x, y float64) bool {
	return x >= 0 && x <= l.Width && y >= 0 && y <= l.Height
}

// Validate checks sizes and the spawn point.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v must be positive", ErrInvalidLevel, l.Width, l.Height)
	}
	for i, w := range l.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("%w: wall %d has empty size %vx%v", ErrInvalidLevel, i, w.W, w.H)
		}
	}
	if !l.InBounds(l.Spawn.X, l.Spawn.Y) {
		return fmt.Errorf("%w: spawn (%v,%v) is outside the floor", ErrInvalidLevel, l.Spawn.X, l.Spawn.Y)
	}
	for i, w := range l.Walls {
		if w.Contains(l.Spawn.X, l.Spawn.Y) {
			return fmt.Errorf("%w: spawn (%v,%v) is inside wall %d", ErrInvalidLevel, l.Spawn.X, l.Spawn.Y, i)
		}
	}
	return nil
}

// Parse decodes and validates a YAML level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadFile reads a level from disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// LoadBundled returns one of the levels compiled into the binary.
func LoadBundled(name string) (*Level, error) {
	data, err := bundled.ReadFile("levels/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown bundled level %q: %w", name, err)
	}
	return Parse(data)
}

// Load picks a file when path is set, the bundled default otherwise.
func Load(path string) (*Level, error) {
	if path == "" {
		return LoadBundled(DefaultLevel)
	}
	return LoadFile(path)
}
