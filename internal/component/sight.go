// internal/component/sight.go
package component

import "go-stealth/pkg/losmesh"

// Sight attaches a line-of-sight fan to an entity. It is also the mesh sink
// of its mesher: the last submitted section is kept for drawing.
type Sight struct {
	Mesher      *losmesh.Mesher
	Section     losmesh.MeshSection
	Submissions int
}

// NewSight creates an uninitialized fan for the config.
func NewSight(cfg losmesh.FanConfig) *Sight {
	s := &Sight{}
	s.Mesher = losmesh.NewMesher(cfg, s)
	return s
}

// SubmitMeshSection replaces the stored section.
func (s *Sight) SubmitMeshSection(section int, mesh losmesh.MeshSection) {
	if section != losmesh.Section {
		return
	}
	s.Section = mesh
	s.Submissions++
}
