package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-stealth/internal/component"
	"go-stealth/internal/entity"
	"go-stealth/internal/event"
	"go-stealth/internal/logging"
	"go-stealth/internal/metrics"
	"go-stealth/internal/types"
	"go-stealth/pkg/geom"
	"go-stealth/pkg/level"
	"go-stealth/pkg/losmesh"
)

func testWorld(t *testing.T) *level.World {
	t.Helper()
	lvl := &level.Level{
		Name:   "test",
		Width:  1000,
		Height: 1000,
		Spawn:  level.Point{X: 100, Y: 100},
		Walls: []level.Wall{
			{X: 300, Y: 0, W: 50, H: 1000},
			{X: 100, Y: 400, W: 100, H: 20, Transparent: true},
		},
	}
	require.NoError(t, lvl.Validate())
	w, err := level.NewWorld(lvl)
	require.NoError(t, err)
	return w
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func listen(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{}
	for _, et := range kinds {
		d.Subscribe(et, r)
	}
	return r
}

func spawnPawn(ecs *entity.ECS, x, y, yaw float64) types.EntityID {
	id := ecs.NewEntity()
	tr := geom.NewTransform(mgl64.Vec3{x, y, 0}, yaw)
	ecs.Transforms[id] = &tr
	ecs.Velocities[id] = &component.Velocity{Speed: 600, RotationRate: 640}
	ecs.Bodies[id] = &component.Body{Radius: 42}
	ecs.Controllers[id] = &component.PlayerController{MinMoveDistance: 120}
	return id
}

func TestMovementReachesDestination(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.DestinationReached)
	id := spawnPawn(ecs, 100, 100, 0)
	ecs.MoveTargets[id] = &component.MoveTarget{Destination: mgl64.Vec3{200, 100, 0}, Active: true}

	s := NewMovementSystem(ecs, testWorld(t), d)
	s.Update(0.1)
	assert.InDelta(t, 160, ecs.Transforms[id].Location.X(), 1e-9)
	assert.InDelta(t, 600, ecs.Velocities[id].Current.X(), 1e-9)
	assert.Empty(t, rec.events)

	s.Update(0.1)
	assert.Equal(t, mgl64.Vec3{200, 100, 0}, ecs.Transforms[id].Location)
	assert.False(t, ecs.MoveTargets[id].Active)
	assert.Equal(t, mgl64.Vec3{}, ecs.Velocities[id].Current)
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.EntityData{Entity: id, X: 200, Y: 100}, rec.events[0].Data)

	s.Update(0.1)
	assert.Len(t, rec.events, 1, "inactive targets are ignored")
}

func TestMovementTurnsAtRotationRate(t *testing.T) {
	ecs := entity.NewECS()
	id := spawnPawn(ecs, 100, 100, math.Pi/2)
	ecs.MoveTargets[id] = &component.MoveTarget{Destination: mgl64.Vec3{800, 100, 0}, Active: true}

	s := NewMovementSystem(ecs, nil, nil)
	s.Update(0.1)
	assert.InDelta(t, math.Pi/2-mgl64.DegToRad(64), ecs.Transforms[id].Yaw, 1e-9)

	s.Update(0.1)
	assert.InDelta(t, 0, ecs.Transforms[id].Yaw, 1e-9)
}

func TestMovementStopsAtWall(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.DestinationReached)
	id := spawnPawn(ecs, 100, 100, 0)
	ecs.MoveTargets[id] = &component.MoveTarget{Destination: mgl64.Vec3{500, 100, 0}, Active: true}

	s := NewMovementSystem(ecs, testWorld(t), d)
	for i := 0; i < 10; i++ {
		s.Update(0.1)
	}

	// радиус 42, стена с x=300: 280 уже пересекается
	assert.InDelta(t, 220, ecs.Transforms[id].Location.X(), 1e-9)
	assert.False(t, ecs.MoveTargets[id].Active)
	assert.Len(t, rec.events, 1)
}

func TestMovementSlidesAlongWall(t *testing.T) {
	ecs := entity.NewECS()
	id := spawnPawn(ecs, 240, 100, 0)
	ecs.MoveTargets[id] = &component.MoveTarget{Destination: mgl64.Vec3{400, 400, 0}, Active: true}

	s := NewMovementSystem(ecs, testWorld(t), nil)
	s.Update(0.1)

	loc := ecs.Transforms[id].Location
	assert.InDelta(t, 240, loc.X(), 1e-9)
	assert.InDelta(t, 100+60*300.0/340.0, loc.Y(), 1e-9)
	assert.True(t, ecs.MoveTargets[id].Active)
}

func TestMovementIgnoresNonPositiveDelta(t *testing.T) {
	ecs := entity.NewECS()
	id := spawnPawn(ecs, 100, 100, 0)
	ecs.MoveTargets[id] = &component.MoveTarget{Destination: mgl64.Vec3{800, 100, 0}, Active: true}

	NewMovementSystem(ecs, nil, nil).Update(0)
	assert.Equal(t, mgl64.Vec3{100, 100, 0}, ecs.Transforms[id].Location)
}

func TestSetNewMoveDestinationRespectsMinimumDistance(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.DestinationSet)
	id := spawnPawn(ecs, 100, 100, 0)
	s := NewControllerSystem(ecs, testWorld(t), d)
	ctrl := ecs.Controllers[id]

	assert.False(t, s.SetNewMoveDestination(id, ctrl, mgl64.Vec3{200, 100, 0}))
	assert.False(t, s.SetNewMoveDestination(id, ctrl, mgl64.Vec3{220, 100, 0}), "exactly the minimum is too close")
	assert.NotContains(t, ecs.MoveTargets, id)
	assert.Empty(t, rec.events)

	assert.True(t, s.SetNewMoveDestination(id, ctrl, mgl64.Vec3{250, 100, 100}))
	require.Contains(t, ecs.MoveTargets, id)
	assert.Equal(t, mgl64.Vec3{250, 100, 0}, ecs.MoveTargets[id].Destination, "destinations are flattened")
	assert.True(t, ecs.MoveTargets[id].Active)
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.EntityData{Entity: id, X: 250, Y: 100}, rec.events[0].Data)
}

func TestControllerFollowsCursorWhileHeld(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.Set(zap.New(core))
	defer logging.Set(nil)

	ecs := entity.NewECS()
	id := spawnPawn(ecs, 100, 100, 0)
	s := NewControllerSystem(ecs, testWorld(t), nil)

	s.Update(Input{Cursor: mgl64.Vec3{100, 800, 0}, SetDestinationPressed: true})
	assert.True(t, ecs.Controllers[id].MoveToCursor)
	assert.Equal(t, mgl64.Vec3{100, 800, 0}, ecs.MoveTargets[id].Destination)

	// held: the destination keeps following the cursor
	s.Update(Input{Cursor: mgl64.Vec3{250, 800, 0}})
	assert.Equal(t, mgl64.Vec3{250, 800, 0}, ecs.MoveTargets[id].Destination)

	s.Update(Input{Cursor: mgl64.Vec3{200, 900, 0}, SetDestinationReleased: true})
	assert.False(t, ecs.Controllers[id].MoveToCursor)
	assert.Equal(t, mgl64.Vec3{250, 800, 0}, ecs.MoveTargets[id].Destination)

	assert.Equal(t, 2, logs.FilterMessage("move destination set").Len())
}

func TestControllerTraceOntoWallTopIsFlattened(t *testing.T) {
	ecs := entity.NewECS()
	id := spawnPawn(ecs, 100, 100, 0)
	s := NewControllerSystem(ecs, testWorld(t), nil)

	s.Update(Input{Cursor: mgl64.Vec3{320, 500, 0}, SetDestinationPressed: true})
	assert.Equal(t, mgl64.Vec3{320, 500, 0}, ecs.MoveTargets[id].Destination)
}

func TestControllerIgnoresCursorOffTheFloor(t *testing.T) {
	ecs := entity.NewECS()
	id := spawnPawn(ecs, 100, 100, 0)
	s := NewControllerSystem(ecs, testWorld(t), nil)

	s.Update(Input{Cursor: mgl64.Vec3{-50, 500, 0}, SetDestinationPressed: true})
	assert.True(t, ecs.Controllers[id].MoveToCursor)
	assert.NotContains(t, ecs.MoveTargets, id)
}

func TestControllerTouchSetsDestination(t *testing.T) {
	ecs := entity.NewECS()
	id := spawnPawn(ecs, 100, 100, 0)
	s := NewControllerSystem(ecs, testWorld(t), nil)

	s.Update(Input{Touches: []mgl64.Vec3{{100, 700, 0}}})
	assert.False(t, ecs.Controllers[id].MoveToCursor)
	require.Contains(t, ecs.MoveTargets, id)
	assert.Equal(t, mgl64.Vec3{100, 700, 0}, ecs.MoveTargets[id].Destination)
}

func TestCursorDecal(t *testing.T) {
	ecs := entity.NewECS()
	s := NewCursorSystem(ecs, testWorld(t))

	s.Update(mgl64.Vec3{320, 500, 0})
	assert.True(t, ecs.Cursor.Visible)
	assert.Equal(t, mgl64.Vec3{320, 500, level.WallHeight}, ecs.Cursor.Location)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, ecs.Cursor.Normal)

	s.Update(mgl64.Vec3{1200, 500, 0})
	assert.False(t, ecs.Cursor.Visible)
}

func TestSightAttachInitializesFan(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logging.Set(zap.New(core))
	defer logging.Set(nil)

	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := listen(d, event.SightInitialized)
	id := spawnPawn(ecs, 100, 100, 0)

	s := NewSightSystem(ecs, testWorld(t), d, nil)
	sight := s.Attach(id, losmesh.DefaultFanConfig())

	assert.Same(t, sight, ecs.Sights[id])
	assert.Equal(t, losmesh.Ready, sight.Mesher.State())
	assert.Equal(t, 1, sight.Submissions)
	assert.Len(t, sight.Section.Vertices, 122)
	assert.Len(t, sight.Section.Indices, 360)
	require.Len(t, rec.events, 1)

	entries := logs.FilterMessage("line of sight mesh initialized").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(122), entries[0].ContextMap()["vertices"])
}

func TestSightUpdateTracesWorld(t *testing.T) {
	ecs := entity.NewECS()
	m := metrics.New()
	id := spawnPawn(ecs, 100, 100, 0)

	s := NewSightSystem(ecs, testWorld(t), nil, m)
	sight := s.Attach(id, losmesh.DefaultFanConfig())

	// the forward ray is sample 60 in both sweeps
	center := sight.Section.Vertices[61]
	assert.InDelta(t, 500, center.X(), 1e-6)

	s.Update(1.0 / 60)
	center = sight.Section.Vertices[61]
	assert.InDelta(t, 200, center.X(), 1e-6)
	assert.InDelta(t, 0, center.Y(), 1e-6)
	assert.Equal(t, mgl64.Vec3{}, sight.Section.Vertices[0])
	assert.Equal(t, 2, sight.Submissions)

	assert.Equal(t, 121.0, testutil.ToFloat64(m.Rays))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TickSeconds))
}

func TestSightUpdateWithoutWorldKeepsMesh(t *testing.T) {
	ecs := entity.NewECS()
	m := metrics.New()
	id := spawnPawn(ecs, 100, 100, 0)

	s := NewSightSystem(ecs, nil, nil, m)
	sight := s.Attach(id, losmesh.DefaultFanConfig())
	before := sight.Mesher.Mesh().Clone()

	s.Update(1.0 / 60)
	assert.Equal(t, before.Vertices, sight.Section.Vertices)
	assert.Equal(t, 1, sight.Submissions)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SkippedTicks))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Rays))
}

func TestSightFollowsOwner(t *testing.T) {
	ecs := entity.NewECS()
	id := spawnPawn(ecs, 100, 100, 0)
	s := NewSightSystem(ecs, testWorld(t), nil, nil)
	sight := s.Attach(id, losmesh.FanConfig{ArcAngle: 120, AngleStep: 60, Radius: 500})

	// turned to face +Y, the fan no longer reaches the wall
	ecs.Transforms[id].Yaw = math.Pi / 2
	s.Update(1.0 / 60)
	center := sight.Section.Vertices[2]
	assert.InDelta(t, 500, center.X(), 1e-6)
	assert.InDelta(t, 0, center.Y(), 1e-6)
}
