// pkg/level/world.go
package level

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"
)

// Channel selects which walls a trace collides with.
type Channel int

const (
	// ChannelSight ignores transparent walls.
	ChannelSight Channel = iota
	// ChannelMovement collides with every wall.
	ChannelMovement
)

// WallHeight is the height of wall tops hit by traces from above.
const WallHeight = 100.0

// bboxPad keeps rtree rects non-degenerate for axis-aligned segments.
const bboxPad = 1e-3

// Hit is the result of a trace. When Blocked is false Point is the segment
// end and Distance its length.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Blocked  bool
	Distance float64
	Wall     int // index into Level.Walls, -1 for the floor or no hit
}

type wallSpatial struct {
	index int
	wall  Wall
	rect  rtreego.Rect
}

func (w *wallSpatial) Bounds() rtreego.Rect {
	return w.rect
}

// World answers traces against a level's walls.
type World struct {
	level *Level
	tree  *rtreego.Rtree
}

// NewWorld indexes the level walls.
func NewWorld(lvl *Level) (*World, error) {
	tree := rtreego.NewTree(2, 4, 16)
	for i, w := range lvl.Walls {
		rect, err := rtreego.NewRect(rtreego.Point{w.X, w.Y}, []float64{w.W, w.H})
		if err != nil {
			return nil, err
		}
		tree.Insert(&wallSpatial{index: i, wall: w, rect: rect})
	}
	return &World{level: lvl, tree: tree}, nil
}

func (w *World) Level() *Level { return w.level }

// Raycast traces the horizontal segment start→end and returns the nearest
// wall hit on the channel.
func (w *World) Raycast(start, end mgl64.Vec3, channel Channel) Hit {
	miss := Hit{Point: end, Distance: end.Sub(start).Len(), Wall: -1}

	minX, maxX := math.Min(start.X(), end.X()), math.Max(start.X(), end.X())
	minY, maxY := math.Min(start.Y(), end.Y()), math.Max(start.Y(), end.Y())
	bb, err := rtreego.NewRect(
		rtreego.Point{minX - bboxPad, minY - bboxPad},
		[]float64{maxX - minX + 2*bboxPad, maxY - minY + 2*bboxPad},
	)
	if err != nil {
		return miss
	}

	best := miss
	bestT := math.Inf(1)
	for _, s := range w.tree.SearchIntersect(bb) {
		ws := s.(*wallSpatial)
		if channel == ChannelSight && ws.wall.Transparent {
			continue
		}
		t, normal, ok := segmentHitsWall(start, end, ws.wall)
		if !ok || t >= bestT {
			continue
		}
		bestT = t
		point := start.Add(end.Sub(start).Mul(t))
		best = Hit{
			Point:    point,
			Normal:   normal,
			Blocked:  true,
			Distance: point.Sub(start).Len(),
			Wall:     ws.index,
		}
	}
	return best
}

// HitPoint returns the first sight-blocking point on start→end, or end.
func (w *World) HitPoint(start, end mgl64.Vec3) mgl64.Vec3 {
	return w.Raycast(start, end, ChannelSight).Point
}

// TraceUnderPoint traces straight down at (x, y), as a camera looking at the
// floor would. Wall tops are hit before the floor; nothing is hit off the
// floor.
func (w *World) TraceUnderPoint(x, y float64) Hit {
	up := mgl64.Vec3{0, 0, 1}
	for _, s := range w.tree.SearchIntersect(pointRect(x, y)) {
		ws := s.(*wallSpatial)
		if ws.wall.Contains(x, y) {
			return Hit{Point: mgl64.Vec3{x, y, WallHeight}, Normal: up, Blocked: true, Wall: ws.index}
		}
	}
	if w.level.InBounds(x, y) {
		return Hit{Point: mgl64.Vec3{x, y, 0}, Normal: up, Blocked: true, Wall: -1}
	}
	return Hit{Point: mgl64.Vec3{x, y, 0}, Wall: -1}
}

// Blocked reports whether a circle of radius at p overlaps a wall or leaves
// the floor.
func (w *World) Blocked(p mgl64.Vec3, radius float64) bool {
	x, y := p.X(), p.Y()
	if x-radius < 0 || y-radius < 0 || x+radius > w.level.Width || y+radius > w.level.Height {
		return true
	}
	bb, err := rtreego.NewRect(rtreego.Point{x - radius, y - radius}, []float64{2*radius + bboxPad, 2*radius + bboxPad})
	if err != nil {
		return true
	}
	for _, s := range w.tree.SearchIntersect(bb) {
		wall := s.(*wallSpatial).wall
		cx := math.Max(wall.X, math.Min(x, wall.MaxX()))
		cy := math.Max(wall.Y, math.Min(y, wall.MaxY()))
		if (x-cx)*(x-cx)+(y-cy)*(y-cy) < radius*radius {
			return true
		}
	}
	return false
}

func pointRect(x, y float64) rtreego.Rect {
	r, _ := rtreego.NewRect(rtreego.Point{x - bboxPad, y - bboxPad}, []float64{2 * bboxPad, 2 * bboxPad})
	return r
}

// segmentHitsWall is a slab test of start→end against the wall rectangle.
// It returns the entry parameter t in [0,1] and the face normal. A segment
// starting inside the wall hits at t=0 with a zero normal.
func segmentHitsWall(start, end mgl64.Vec3, wall Wall) (float64, mgl64.Vec3, bool) {
	o := [2]float64{start.X(), start.Y()}
	d := [2]float64{end.X() - start.X(), end.Y() - start.Y()}
	lo := [2]float64{wall.X, wall.Y}
	hi := [2]float64{wall.MaxX(), wall.MaxY()}

	tMin, tMax := 0.0, 1.0
	var normal mgl64.Vec3
	for axis := 0; axis < 2; axis++ {
		if math.Abs(d[axis]) < 1e-12 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		inv := 1.0 / d[axis]
		t1 := (lo[axis] - o[axis]) * inv
		t2 := (hi[axis] - o[axis]) * inv
		side := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			side = 1.0
		}
		if t1 > tMin {
			tMin = t1
			normal = mgl64.Vec3{}
			normal[axis] = side
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, mgl64.Vec3{}, false
		}
	}
	return tMin, normal, true
}
