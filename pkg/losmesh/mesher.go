// pkg/losmesh/mesher.go
package losmesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"go-stealth/pkg/geom"
)

// Section is the mesh section index the fan is submitted as.
const Section = 0

// ErrNotInitialized is returned by Tick before Initialize.
var ErrNotInitialized = errors.New("losmesh: mesher is not initialized")

// Owner is the entity the fan is attached to.
type Owner interface {
	WorldLocation() mgl64.Vec3
	Forward() mgl64.Vec3
	InverseTransformPosition(world mgl64.Vec3) mgl64.Vec3
}

// RayHitProvider traces the world segment start→end and returns the first
// blocking point, or end when nothing blocks.
type RayHitProvider interface {
	HitPoint(start, end mgl64.Vec3) mgl64.Vec3
}

// RayHitFunc adapts a function to RayHitProvider.
type RayHitFunc func(start, end mgl64.Vec3) mgl64.Vec3

func (f RayHitFunc) HitPoint(start, end mgl64.Vec3) mgl64.Vec3 {
	return f(start, end)
}

// State of a Mesher.
type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Mesher builds and refreshes a line-of-sight fan. A Mesher belongs to one
// entity and is ticked from one goroutine.
type Mesher struct {
	config FanConfig
	sink   MeshSink
	mesh   FanMesh
	state  State
}

// NewMesher returns an uninitialized mesher. The config is normalized; sink
// may be nil when nothing draws the fan.
func NewMesher(config FanConfig, sink MeshSink) *Mesher {
	return &Mesher{
		config: config.Normalized(),
		sink:   sink,
	}
}

func (m *Mesher) Config() FanConfig { return m.config }

func (m *Mesher) State() State { return m.state }

// Mesh returns the current geometry. The slices are owned by the mesher and
// are rewritten on every tick; Clone before keeping them.
func (m *Mesher) Mesh() FanMesh { return m.mesh }

// Initialize allocates the fan with every ray unobstructed, builds the index
// buffer and submits the first section.
func (m *Mesher) Initialize(owner Owner) FanMesh {
	vertexCount := m.config.VertexCount()
	m.mesh = FanMesh{
		Vertices: make([]mgl64.Vec3, vertexCount),
		Indices:  make([]int, m.config.IndexCount()),
	}

	start := owner.WorldLocation()
	forward := owner.Forward()
	for i, n := 0, m.config.SampleCount(); i < n; i++ {
		end := m.rayEnd(start, forward, m.config.SampleAngle(i, false))
		m.mesh.Vertices[i+1] = owner.InverseTransformPosition(end)
	}

	buildFanIndices(m.mesh.Indices, vertexCount, m.config.IsCircle())
	m.state = Ready
	m.submit()
	return m.mesh
}

// Tick re-traces every ray and replaces the section. A nil rays provider
// means the world is not available this frame and the previous geometry is
// kept. The sweep runs from +arc/2 down to -arc/2, so after the first tick
// slot 1 holds the leftmost ray (Initialize fills slot 1 with the rightmost).
func (m *Mesher) Tick(deltaTime float64, owner Owner, rays RayHitProvider) error {
	if m.state != Ready {
		return ErrNotInitialized
	}
	if rays == nil || owner == nil {
		return nil
	}

	start := owner.WorldLocation()
	forward := owner.Forward()
	for i, n := 0, m.config.SampleCount(); i < n; i++ {
		end := m.rayEnd(start, forward, m.config.SampleAngle(i, true))
		hit := rays.HitPoint(start, end)
		m.mesh.Vertices[i+1] = owner.InverseTransformPosition(hit)
	}

	buildFanIndices(m.mesh.Indices, len(m.mesh.Vertices), m.config.IsCircle())
	m.submit()
	return nil
}

// RaysPerTick is the number of traces one Tick performs.
func (m *Mesher) RaysPerTick() int {
	return m.config.SampleCount()
}

func (m *Mesher) rayEnd(start, forward mgl64.Vec3, angle float64) mgl64.Vec3 {
	return start.Add(geom.RotateAboutUp(forward, angle).Mul(m.config.Radius))
}

func (m *Mesher) submit() {
	if m.sink == nil {
		return
	}
	m.sink.SubmitMeshSection(Section, MeshSection{
		Vertices:          m.mesh.Vertices,
		Indices:           m.mesh.Indices,
		GenerateCollision: false,
	})
}
