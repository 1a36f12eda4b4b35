// pkg/losmesh/mesh.go
package losmesh

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// FanMesh is a triangle fan in the owner's local frame. Vertices[0] is the
// apex at the local origin.
type FanMesh struct {
	Vertices []mgl64.Vec3
	Indices  []int
}

// Clone returns a deep copy.
func (m FanMesh) Clone() FanMesh {
	return FanMesh{
		Vertices: append([]mgl64.Vec3(nil), m.Vertices...),
		Indices:  append([]int(nil), m.Indices...),
	}
}

// MeshSection is one renderable section handed to a MeshSink. Optional
// attributes are left nil for flat, unlit drawing.
type MeshSection struct {
	Vertices          []mgl64.Vec3
	Indices           []int
	Normals           []mgl64.Vec3
	UVs               []mgl64.Vec2
	Colors            []color.RGBA
	Tangents          []mgl64.Vec3
	GenerateCollision bool
}

// MeshSink receives full section replacements.
type MeshSink interface {
	SubmitMeshSection(section int, mesh MeshSection)
}

// MeshSinkFunc adapts a function to MeshSink.
type MeshSinkFunc func(section int, mesh MeshSection)

func (f MeshSinkFunc) SubmitMeshSection(section int, mesh MeshSection) {
	f(section, mesh)
}

// buildFanIndices fills indices as a fan around vertex 0. For a full circle
// the last triangle closes back onto vertex 1.
func buildFanIndices(indices []int, vertexCount int, circle bool) {
	last := (vertexCount - 2) * 3
	for tri, v := 0, 0; tri+2 < len(indices); tri, v = tri+3, v+1 {
		indices[tri] = 0
		indices[tri+1] = v + 1
		if circle && tri == last {
			indices[tri+2] = 1
		} else {
			indices[tri+2] = v + 2
		}
	}
}
