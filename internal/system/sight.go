// internal/system/sight.go
package system

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"go-stealth/internal/component"
	"go-stealth/internal/entity"
	"go-stealth/internal/event"
	"go-stealth/internal/logging"
	"go-stealth/internal/metrics"
	"go-stealth/internal/types"
	"go-stealth/pkg/losmesh"
)

// SightSystem owns the line-of-sight meshes: it builds one when a Sight is
// attached and re-traces every fan once per frame.
type SightSystem struct {
	ecs             *entity.ECS
	world           losmesh.RayHitProvider
	eventDispatcher *event.Dispatcher
	metrics         *metrics.Metrics
}

// NewSightSystem takes the ray provider used by every fan. A nil world makes
// every tick a no-op that keeps the previous geometry.
func NewSightSystem(ecs *entity.ECS, world losmesh.RayHitProvider, eventDispatcher *event.Dispatcher, m *metrics.Metrics) *SightSystem {
	return &SightSystem{ecs: ecs, world: world, eventDispatcher: eventDispatcher, metrics: m}
}

// Attach gives id a fan and initializes it from the entity's transform.
func (s *SightSystem) Attach(id types.EntityID, cfg losmesh.FanConfig) *component.Sight {
	sight := component.NewSight(cfg)
	s.ecs.Sights[id] = sight

	tr, ok := s.ecs.Transforms[id]
	if !ok {
		logging.L().Warn("sight attached to entity without transform", zap.Uint64("entity", uint64(id)))
		return sight
	}
	mesh := sight.Mesher.Initialize(*tr)
	c := sight.Mesher.Config()
	logging.L().Info("line of sight mesh initialized",
		zap.Uint64("entity", uint64(id)),
		zap.Float64("arc_angle", c.ArcAngle),
		zap.Float64("angle_step", c.AngleStep),
		zap.Float64("radius", c.Radius),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)))
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.SightInitialized,
			Data: event.EntityData{Entity: id, X: tr.Location.X(), Y: tr.Location.Y()},
		})
	}
	return sight
}

func (s *SightSystem) Update(deltaTime float64) {
	if s.world == nil {
		if len(s.ecs.Sights) > 0 {
			logging.L().Debug("no world to trace against, keeping previous sight meshes")
			if s.metrics != nil {
				s.metrics.SkippedTicks.Add(float64(len(s.ecs.Sights)))
			}
		}
		return
	}

	start := time.Now()
	rays := 0
	for id, sight := range s.ecs.Sights {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if err := sight.Mesher.Tick(deltaTime, *tr, s.world); err != nil {
			if errors.Is(err, losmesh.ErrNotInitialized) {
				logging.L().Debug("sight tick before initialize", zap.Uint64("entity", uint64(id)))
			}
			continue
		}
		rays += sight.Mesher.RaysPerTick()
	}

	if s.metrics != nil {
		s.metrics.Rays.Add(float64(rays))
		s.metrics.TickSeconds.Observe(time.Since(start).Seconds())
	}
}
