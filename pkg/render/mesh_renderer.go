// pkg/render/mesh_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-stealth/pkg/geom"
	"go-stealth/pkg/losmesh"
)

// MeshRenderer draws a submitted fan section. Vertices are in the owner's
// local frame and are moved to the screen through owner and camera.
type MeshRenderer struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewMeshRenderer() *MeshRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &MeshRenderer{fillImg: fillImg}
}

// Draw fills every triangle of section with c. Sections with more vertices
// than a uint16 index can address are skipped.
func (r *MeshRenderer) Draw(target *ebiten.Image, section losmesh.MeshSection, owner geom.Transform, camera *geom.Camera, c color.RGBA) {
	if len(section.Indices) == 0 || len(section.Vertices) > 1<<16 {
		return
	}
	cr, cg, cb, ca := colorScale(c)

	r.vs = r.vs[:0]
	for _, v := range section.Vertices {
		x, y := camera.WorldToScreen(owner.TransformPosition(v))
		r.vs = append(r.vs, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   0,
			SrcY:   0,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.is = r.is[:0]
	for _, i := range section.Indices {
		r.is = append(r.is, uint16(i))
	}

	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Outline strokes the fan rim, apex to apex.
func (r *MeshRenderer) Outline(target *ebiten.Image, section losmesh.MeshSection, owner geom.Transform, camera *geom.Camera, width float32, c color.RGBA) {
	n := len(section.Vertices)
	if n < 2 {
		return
	}
	prev := section.Vertices[0]
	for i := 1; i <= n; i++ {
		next := section.Vertices[i%n]
		strokeWorldLine(target, camera, owner.TransformPosition(prev), owner.TransformPosition(next), width, c)
		prev = next
	}
}
